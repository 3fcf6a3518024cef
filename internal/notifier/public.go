package notifier

import (
	"context"
)

type ChangeType string

const (
	ChangeTypeGrant  ChangeType = "GRANT"
	ChangeTypeRevoke ChangeType = "REVOKE"
)

type Notifier interface {
	PermissionsUpdate(ctx context.Context, threadID string, userID string, commands []string, changeType ChangeType) error
}
