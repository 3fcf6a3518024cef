package platform

import (
	"context"
)

// Mention is a platform reference to a tagged user inside a message body.
type Mention struct {
	UserID string `json:"userId"`
	Tag    string `json:"tag"`
}

type Message struct {
	Body     string    `json:"body"`
	Mentions []Mention `json:"mentions,omitempty"`
}

type Participant struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

type ThreadInfo struct {
	ID           string        `bson:"_id" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Participants []Participant `bson:"participants" json:"participants"`
}

type AdminInfo struct {
	Admins   []string
	BotOwner string
}

// Directory resolves thread metadata maintained by the chat gateway.
type Directory interface {
	ThreadInfo(ctx context.Context, threadID string) (*ThreadInfo, error)
	ThreadAdmins(ctx context.Context, threadID string) (*AdminInfo, error)
}

// Messenger delivers outbound messages into a thread.
type Messenger interface {
	SendMessage(ctx context.Context, threadID string, msg *Message) error
}
