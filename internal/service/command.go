package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"permission-bot/internal/dispatch"
	"permission-bot/internal/notifier"
	"permission-bot/internal/platform"
)

const (
	permissionCommandName = "permission"
	permissionUsage       = "permission <grant|revoke|list> <all | command1,...> <@all | @person1,...>"

	allCommandsToken = "all"
	allUsersToken    = "@all"
)

var permissionPattern = regexp.MustCompile(`^permission (grant|revoke|list)(?:\s+(\S+))?(?:\s+(.+))?$`)

// permissionCommand implements the `permission` chat command: bulk grant and
// revoke of command access for users in the current thread.
type permissionCommand struct {
	logger    *zap.SugaredLogger
	perms     Permissions
	registry  CommandLister
	messenger platform.Messenger
	dir       platform.Directory
	notif     notifier.Notifier
}

type target struct {
	userID string
	tag    string
}

func (c *permissionCommand) Meta() dispatch.CommandMeta {
	return dispatch.CommandMeta{
		Name:      permissionCommandName,
		AdminOnly: true,
		Usage:     permissionUsage,
	}
}

func (c *permissionCommand) Pattern() *regexp.Regexp {
	return permissionPattern
}

func (c *permissionCommand) HandleEvent(ctx context.Context, ev *dispatch.Event) error {
	action := ev.Matches[1]
	if action == "list" {
		return c.messenger.SendMessage(ctx, ev.ThreadID, &platform.Message{
			Body: "The list action is under development.",
		})
	}

	commandsToken := ev.Matches[2]
	if commandsToken == "" {
		return c.warn(ctx, ev.ThreadID, "No commands given.")
	}

	commands, ok := c.resolveCommands(commandsToken)
	if !ok {
		return c.warn(ctx, ev.ThreadID, "None of the requested commands exist.")
	}
	// Every requested command was admin-only and dropped: nothing to apply
	// and nothing to confirm.
	if len(commands) == 0 {
		return nil
	}

	targets, err := c.resolveTargets(ctx, ev)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return c.warn(ctx, ev.ThreadID, "No users given. Mention the users or use @all.")
	}

	if err := c.apply(ctx, ev.ThreadID, action, targets, commands); err != nil {
		return err
	}

	return c.confirm(ctx, ev.ThreadID, action, targets, commands)
}

// resolveCommands expands the command token into the set of registered
// command names to apply. Admin-only commands are silently dropped; ok is
// false only when no requested name matches a registered command at all.
func (c *permissionCommand) resolveCommands(token string) (commands []string, ok bool) {
	registered := c.registry.Commands()

	var requested []string
	if token == allCommandsToken {
		for _, meta := range registered {
			requested = append(requested, meta.Name)
		}
	} else {
		for _, part := range strings.Split(token, ",") {
			if part = strings.TrimSpace(part); part != "" {
				requested = append(requested, part)
			}
		}
	}

	adminOnly := make(map[string]bool, len(registered))
	for _, meta := range registered {
		adminOnly[meta.Name] = meta.AdminOnly
	}

	anyKnown := false
	for _, name := range requested {
		if _, known := adminOnly[name]; !known {
			continue
		}
		anyKnown = true
		if adminOnly[name] {
			continue
		}
		commands = append(commands, name)
	}
	return commands, anyKnown
}

// resolveTargets picks the explicitly mentioned users, or every thread
// participant when the raw body contains @all. An empty result means the
// sender gave no usable target.
func (c *permissionCommand) resolveTargets(ctx context.Context, ev *dispatch.Event) ([]target, error) {
	if len(ev.Mentions) > 0 {
		targets := make([]target, len(ev.Mentions))
		for i, mention := range ev.Mentions {
			targets[i] = target{userID: mention.UserID, tag: mention.Tag}
		}
		return targets, nil
	}

	if !strings.Contains(ev.Body, allUsersToken) {
		return nil, nil
	}

	info, err := c.dir.ThreadInfo(ctx, ev.ThreadID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve thread participants: %w", err)
	}

	targets := make([]target, len(info.Participants))
	for i, participant := range info.Participants {
		targets[i] = target{userID: participant.ID, tag: "@" + participant.Name}
	}
	return targets, nil
}

func (c *permissionCommand) apply(ctx context.Context, threadID string, action string, targets []target, commands []string) error {
	changeType := notifier.ChangeTypeGrant
	if action == "revoke" {
		changeType = notifier.ChangeTypeRevoke
	}

	for _, tgt := range targets {
		var changed bool
		var err error
		switch action {
		case "grant":
			changed, err = c.perms.AddPermissionToUserInThread(ctx, threadID, tgt.userID, commands)
		case "revoke":
			changed, err = c.perms.RemovePermissionFromUserInThread(ctx, threadID, tgt.userID, commands)
		}
		if err != nil {
			return err
		}
		if !changed {
			continue
		}

		if err := c.notif.PermissionsUpdate(ctx, threadID, tgt.userID, commands, changeType); err != nil {
			c.logger.Errorw("failed to send permissions update notification",
				"thread", threadID, "user", tgt.userID, "error", err)
		}
	}
	return nil
}

func (c *permissionCommand) confirm(ctx context.Context, threadID string, action string, targets []target, commands []string) error {
	verb, preposition := "Granted", "to"
	if action == "revoke" {
		verb, preposition = "Revoked", "from"
	}

	tags := make([]string, len(targets))
	mentions := make([]platform.Mention, len(targets))
	for i, tgt := range targets {
		tags[i] = tgt.tag
		mentions[i] = platform.Mention{UserID: tgt.userID, Tag: tgt.tag}
	}

	return c.messenger.SendMessage(ctx, threadID, &platform.Message{
		Body:     fmt.Sprintf("%s %s %s %s", verb, strings.Join(commands, ", "), preposition, strings.Join(tags, ", ")),
		Mentions: mentions,
	})
}

func (c *permissionCommand) warn(ctx context.Context, threadID string, text string) error {
	return c.messenger.SendMessage(ctx, threadID, &platform.Message{
		Body: text + "\nUsage: " + permissionUsage,
	})
}
