package dispatch

import (
	"context"
	"regexp"
	"time"

	"go.uber.org/zap"

	"permission-bot/internal/platform"
)

// Event is an inbound chat message as delivered by the gateway. The gateway
// strips the bot trigger prefix before publishing, so Body starts with the
// command text.
type Event struct {
	ThreadID  string             `json:"threadId"`
	SenderID  string             `json:"senderId"`
	Body      string             `json:"body"`
	Mentions  []platform.Mention `json:"mentions,omitempty"`
	Timestamp time.Time          `json:"timestamp"`

	// Matches holds the capture groups of the command pattern that matched
	// Body. The registry populates it before invoking the handler; index 0 is
	// the full match.
	Matches []string `json:"-"`
}

// Handler is the single capability an event handler must provide.
type Handler interface {
	HandleEvent(ctx context.Context, ev *Event) error
}

type CommandMeta struct {
	Name      string
	AdminOnly bool
	Usage     string
}

// Command is a handler triggered by a text pattern, with metadata the
// registry exposes to other components (grant expansion, admin filtering).
type Command interface {
	Handler
	Meta() CommandMeta
	Pattern() *regexp.Regexp
}

// Checker gates command invocation on the sender's permissions.
type Checker interface {
	UserHasPermission(ctx context.Context, threadID string, userID string, commands ...string) (bool, error)
	IsThreadAdmin(ctx context.Context, threadID string, userID string) bool
}

type Registry struct {
	logger   *zap.SugaredLogger
	checker  Checker
	commands []Command
}

func NewRegistry(logger *zap.SugaredLogger, checker Checker) *Registry {
	return &Registry{
		logger:  logger,
		checker: checker,
	}
}

func (r *Registry) Register(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// Commands enumerates the registered commands. This is the command-registry
// surface the permission command consults to expand "all" and to drop
// admin-only commands from bulk grants.
func (r *Registry) Commands() []CommandMeta {
	metas := make([]CommandMeta, len(r.commands))
	for i, cmd := range r.commands {
		metas[i] = cmd.Meta()
	}
	return metas
}

// Dispatch routes the event to the first command whose pattern matches the
// body, after checking the sender may invoke it. Events matching no command,
// and events from senders without the required permission, are dropped.
func (r *Registry) Dispatch(ctx context.Context, ev *Event) error {
	for _, cmd := range r.commands {
		matches := cmd.Pattern().FindStringSubmatch(ev.Body)
		if matches == nil {
			continue
		}

		meta := cmd.Meta()
		if meta.AdminOnly {
			if !r.checker.IsThreadAdmin(ctx, ev.ThreadID, ev.SenderID) {
				r.logger.Debugw("dropping admin-only command from non-admin",
					"command", meta.Name, "thread", ev.ThreadID, "user", ev.SenderID)
				return nil
			}
		} else {
			allowed, err := r.checker.UserHasPermission(ctx, ev.ThreadID, ev.SenderID, meta.Name)
			if err != nil {
				return err
			}
			if !allowed {
				r.logger.Debugw("dropping command from user without permission",
					"command", meta.Name, "thread", ev.ThreadID, "user", ev.SenderID)
				return nil
			}
		}

		ev.Matches = matches
		return cmd.HandleEvent(ctx, ev)
	}
	return nil
}
