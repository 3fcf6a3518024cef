package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"permission-bot/internal/platform"
	"permission-bot/internal/repository"
)

type permissionService struct {
	logger *zap.SugaredLogger
	repo   repository.Repository
	dir    platform.Directory
}

// IsThreadAdmin reports whether the user is a thread admin or the bot owner.
// A failed admin lookup counts as "not an admin", never as a grant.
func (s *permissionService) IsThreadAdmin(ctx context.Context, threadID string, userID string) bool {
	info, err := s.dir.ThreadAdmins(ctx, threadID)
	if err != nil {
		s.logger.Warnw("failed to resolve thread admins", "thread", threadID, "error", err)
		return false
	}

	if info.BotOwner != "" && userID == info.BotOwner {
		return true
	}
	for _, adminID := range info.Admins {
		if adminID == userID {
			return true
		}
	}
	return false
}

// UserHasPermission is true when the user is a thread admin or the bot owner,
// or when every requested command is present in their stored permission list.
func (s *permissionService) UserHasPermission(ctx context.Context, threadID string, userID string, commands ...string) (bool, error) {
	if s.IsThreadAdmin(ctx, threadID, userID) {
		return true, nil
	}

	held, err := s.repo.GetUserPermissions(ctx, threadID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	for _, command := range commands {
		if !contains(held, command) {
			return false, nil
		}
	}
	return true, nil
}

// AddPermissionToUserInThread grants the commands to the user. It is a no-op
// returning false when the user already passes the check for the whole
// requested set, which includes the admin bypass: granting to an admin never
// touches the store.
func (s *permissionService) AddPermissionToUserInThread(ctx context.Context, threadID string, userID string, commands []string) (bool, error) {
	has, err := s.UserHasPermission(ctx, threadID, userID, commands...)
	if err != nil {
		return false, err
	}
	if has {
		return false, nil
	}

	if err := s.repo.AddPermissionsToUser(ctx, threadID, userID, commands); err != nil {
		return false, err
	}
	return true, nil
}

// RemovePermissionFromUserInThread revokes the commands from the user.
// Returns false when no permission record exists for the thread/user pair.
func (s *permissionService) RemovePermissionFromUserInThread(ctx context.Context, threadID string, userID string, commands []string) (bool, error) {
	err := s.repo.RemovePermissionsFromUser(ctx, threadID, userID, commands)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
