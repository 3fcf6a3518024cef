package repository

import (
	"context"
	"errors"
)

var (
	// ErrUserNotFound is returned when no permission record exists for the
	// thread/user pair.
	ErrUserNotFound = errors.New("no permissions stored for user in thread")
)

type Repository interface {
	// GetUserPermissions returns the command names stored for the user in the
	// thread, or ErrUserNotFound when no record exists.
	GetUserPermissions(ctx context.Context, threadID string, userID string) ([]string, error)

	// AddPermissionsToUser appends the commands to the user's stored
	// permission list, creating missing thread/user records as needed.
	AddPermissionsToUser(ctx context.Context, threadID string, userID string, commands []string) error

	// RemovePermissionsFromUser filters the commands out of the user's stored
	// permission list and prunes records that become empty. Returns
	// ErrUserNotFound when no record exists.
	RemovePermissionsFromUser(ctx context.Context, threadID string, userID string, commands []string) error
}
