package store

import (
	"context"

	"github.com/huddle-ai/huddle-ai/pkg/types"
)

type GroupSessionStore interface {
	Create(ctx context.Context, data types.GroupSession) error
	Get(ctx context.Context, id int64) (*types.GroupSession, error)
	GetByPasscode(ctx context.Context, passcode string) (*types.GroupSession, error)
}

type ChatStore interface {
	Create(ctx context.Context, data types.Chat) error
	Get(ctx context.Context, id int64) (*types.Chat, error)
	GetLatestBySession(ctx context.Context, sessionID int64) (*types.Chat, error)
	ListBySession(ctx context.Context, sessionID int64) ([]types.Chat, error)
	UpdateTitle(ctx context.Context, id int64, title string, accessTime int64) error
	UpdateLatestAccessTime(ctx context.Context, id, accessTime int64) error
}

type ChatMessageStore interface {
	Create(ctx context.Context, data types.ChatMessage) error
	ListByChat(ctx context.Context, chatID int64) ([]types.ChatMessage, error)
	ListAfter(ctx context.Context, chatID, watermark int64) ([]types.ChatMessage, error)
}

// Store is the persistence handle handed to each logic component. The schema
// install is idempotent and safe to run on every process start.
type Store interface {
	GroupSessionStore() GroupSessionStore
	ChatStore() ChatStore
	ChatMessageStore() ChatMessageStore

	Transaction(ctx context.Context, next func(ctx context.Context) error) error
	Install() error
}
