package service

import (
	"context"

	"go.uber.org/zap"

	"permission-bot/internal/dispatch"
	"permission-bot/internal/notifier"
	"permission-bot/internal/platform"
	"permission-bot/internal/repository"
)

// Permissions answers and mutates per-thread, per-user command grants.
// Thread admins and the bot owner implicitly pass every check.
type Permissions interface {
	UserHasPermission(ctx context.Context, threadID string, userID string, commands ...string) (bool, error)
	IsThreadAdmin(ctx context.Context, threadID string, userID string) bool
	AddPermissionToUserInThread(ctx context.Context, threadID string, userID string, commands []string) (bool, error)
	RemovePermissionFromUserInThread(ctx context.Context, threadID string, userID string, commands []string) (bool, error)
}

// CommandLister is the command-registry surface the permission command needs:
// every registered command with its admin-only flag.
type CommandLister interface {
	Commands() []dispatch.CommandMeta
}

func NewPermissions(logger *zap.SugaredLogger, repo repository.Repository, dir platform.Directory) Permissions {
	return &permissionService{
		logger: logger,
		repo:   repo,
		dir:    dir,
	}
}

func NewPermissionCommand(logger *zap.SugaredLogger, perms Permissions, registry CommandLister,
	messenger platform.Messenger, dir platform.Directory, notif notifier.Notifier) dispatch.Command {
	return &permissionCommand{
		logger:    logger,
		perms:     perms,
		registry:  registry,
		messenger: messenger,
		dir:       dir,
		notif:     notif,
	}
}
