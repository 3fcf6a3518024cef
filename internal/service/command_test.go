package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"permission-bot/internal/dispatch"
	"permission-bot/internal/notifier"
	"permission-bot/internal/platform"
	"permission-bot/internal/repository"
)

type staticCommands []dispatch.CommandMeta

func (s staticCommands) Commands() []dispatch.CommandMeta { return s }

var testRegistry = staticCommands{
	{Name: "permission", AdminOnly: true},
	{Name: "meme"},
	{Name: "ban"},
	{Name: "shutdown", AdminOnly: true},
}

type commandMocks struct {
	repo      *repository.MockRepository
	dir       *platform.MockDirectory
	messenger *platform.MockMessenger
	notif     *notifier.MockNotifier
}

func newTestCommand(t *testing.T) (*permissionCommand, commandMocks) {
	mockCntrl := gomock.NewController(t)
	mocks := commandMocks{
		repo:      repository.NewMockRepository(mockCntrl),
		dir:       platform.NewMockDirectory(mockCntrl),
		messenger: platform.NewMockMessenger(mockCntrl),
		notif:     notifier.NewMockNotifier(mockCntrl),
	}

	logger := zap.NewNop().Sugar()
	cmd := &permissionCommand{
		logger:    logger,
		perms:     NewPermissions(logger, mocks.repo, mocks.dir),
		registry:  testRegistry,
		messenger: mocks.messenger,
		dir:       mocks.dir,
		notif:     mocks.notif,
	}
	return cmd, mocks
}

// commandEvent builds an event the way the dispatch registry would: the
// pattern's capture groups end up in Matches.
func commandEvent(body string, mentions ...platform.Mention) *dispatch.Event {
	ev := &dispatch.Event{
		ThreadID: "T1",
		SenderID: "A1",
		Body:     body,
		Mentions: mentions,
	}
	ev.Matches = permissionPattern.FindStringSubmatch(body)
	return ev
}

func TestPermissionCommand_GrantToMentionedUser(t *testing.T) {
	cmd, mocks := newTestCommand(t)

	// "shutdown" is admin-only and silently dropped; "bogus" is not
	// registered and ignored because at least one requested command exists.
	ev := commandEvent("permission grant meme,shutdown,bogus @Bob",
		platform.Mention{UserID: "U2", Tag: "@Bob"})

	mocks.dir.EXPECT().ThreadAdmins(context.Background(), "T1").Return(&platform.AdminInfo{}, nil)
	mocks.repo.EXPECT().GetUserPermissions(context.Background(), "T1", "U2").Return(nil, repository.ErrUserNotFound)
	mocks.repo.EXPECT().AddPermissionsToUser(context.Background(), "T1", "U2", []string{"meme"}).Return(nil)
	mocks.notif.EXPECT().PermissionsUpdate(context.Background(), "T1", "U2", []string{"meme"}, notifier.ChangeTypeGrant).Return(nil)
	mocks.messenger.EXPECT().SendMessage(context.Background(), "T1", &platform.Message{
		Body:     "Granted meme to @Bob",
		Mentions: []platform.Mention{{UserID: "U2", Tag: "@Bob"}},
	}).Return(nil)

	assert.NoError(t, cmd.HandleEvent(context.Background(), ev))
}

func TestPermissionCommand_GrantAlreadyHeldIsNoOp(t *testing.T) {
	cmd, mocks := newTestCommand(t)

	ev := commandEvent("permission grant meme @Bob",
		platform.Mention{UserID: "U2", Tag: "@Bob"})

	// The user already holds the command: the store is not touched and no
	// notification goes out, but the confirmation is still sent.
	mocks.dir.EXPECT().ThreadAdmins(context.Background(), "T1").Return(&platform.AdminInfo{}, nil)
	mocks.repo.EXPECT().GetUserPermissions(context.Background(), "T1", "U2").Return([]string{"meme", "ban"}, nil)
	mocks.messenger.EXPECT().SendMessage(context.Background(), "T1", &platform.Message{
		Body:     "Granted meme to @Bob",
		Mentions: []platform.Mention{{UserID: "U2", Tag: "@Bob"}},
	}).Return(nil)

	assert.NoError(t, cmd.HandleEvent(context.Background(), ev))
}

func TestPermissionCommand_RevokeAllFromEveryone(t *testing.T) {
	cmd, mocks := newTestCommand(t)

	// No explicit mentions, so @all expands to the thread participants.
	ev := commandEvent("permission revoke all @all")

	mocks.dir.EXPECT().ThreadInfo(context.Background(), "T1").Return(&platform.ThreadInfo{
		ID: "T1",
		Participants: []platform.Participant{
			{ID: "U1", Name: "Alice"},
			{ID: "U2", Name: "Bob"},
		},
	}, nil)

	// "all" expands to the registered commands minus the admin-only ones.
	mocks.repo.EXPECT().RemovePermissionsFromUser(context.Background(), "T1", "U1", []string{"meme", "ban"}).Return(nil)
	mocks.notif.EXPECT().PermissionsUpdate(context.Background(), "T1", "U1", []string{"meme", "ban"}, notifier.ChangeTypeRevoke).Return(nil)

	// Bob has no record: the revoke is a no-op and not announced.
	mocks.repo.EXPECT().RemovePermissionsFromUser(context.Background(), "T1", "U2", []string{"meme", "ban"}).
		Return(repository.ErrUserNotFound)

	mocks.messenger.EXPECT().SendMessage(context.Background(), "T1", &platform.Message{
		Body: "Revoked meme, ban from @Alice, @Bob",
		Mentions: []platform.Mention{
			{UserID: "U1", Tag: "@Alice"},
			{UserID: "U2", Tag: "@Bob"},
		},
	}).Return(nil)

	assert.NoError(t, cmd.HandleEvent(context.Background(), ev))
}

func TestPermissionCommand_OnlyAdminOnlyCommandsIsSilent(t *testing.T) {
	cmd, _ := newTestCommand(t)

	// "shutdown" is registered but admin-only, so it is dropped and nothing
	// remains to apply: the store is not touched and no reply goes out.
	ev := commandEvent("permission grant shutdown @Bob",
		platform.Mention{UserID: "U2", Tag: "@Bob"})

	assert.NoError(t, cmd.HandleEvent(context.Background(), ev))
}

func TestPermissionCommand_UnknownCommandsWarn(t *testing.T) {
	cmd, mocks := newTestCommand(t)

	ev := commandEvent("permission grant bogus @Bob",
		platform.Mention{UserID: "U2", Tag: "@Bob"})

	mocks.messenger.EXPECT().SendMessage(context.Background(), "T1", &platform.Message{
		Body: "None of the requested commands exist.\nUsage: " + permissionUsage,
	}).Return(nil)

	assert.NoError(t, cmd.HandleEvent(context.Background(), ev))
}

func TestPermissionCommand_NoTargetsWarn(t *testing.T) {
	cmd, mocks := newTestCommand(t)

	ev := commandEvent("permission grant meme")

	mocks.messenger.EXPECT().SendMessage(context.Background(), "T1", &platform.Message{
		Body: "No users given. Mention the users or use @all.\nUsage: " + permissionUsage,
	}).Return(nil)

	assert.NoError(t, cmd.HandleEvent(context.Background(), ev))
}

func TestPermissionCommand_MissingCommandsWarn(t *testing.T) {
	cmd, mocks := newTestCommand(t)

	ev := commandEvent("permission grant")

	mocks.messenger.EXPECT().SendMessage(context.Background(), "T1", &platform.Message{
		Body: "No commands given.\nUsage: " + permissionUsage,
	}).Return(nil)

	assert.NoError(t, cmd.HandleEvent(context.Background(), ev))
}

func TestPermissionCommand_ListIsStubbed(t *testing.T) {
	cmd, mocks := newTestCommand(t)

	ev := commandEvent("permission list")

	mocks.messenger.EXPECT().SendMessage(context.Background(), "T1", &platform.Message{
		Body: "The list action is under development.",
	}).Return(nil)

	assert.NoError(t, cmd.HandleEvent(context.Background(), ev))
}

func TestPermissionCommand_PatternMatchesCommandSurface(t *testing.T) {
	tests := map[string]struct {
		body    string
		matches bool
	}{
		"grant with commands and mention": {"permission grant meme,ban @Bob", true},
		"revoke with @all":                {"permission revoke all @all", true},
		"bare list":                       {"permission list", true},
		"unknown action":                  {"permission destroy meme", false},
		"different command":               {"meme make fun", false},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.matches, permissionPattern.MatchString(test.body))
		})
	}
}
