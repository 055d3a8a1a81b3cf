package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huddle-ai/huddle-ai/pkg/types"
)

func newTestProvider(t *testing.T) *Provider {
	db := sqlx.MustOpen("sqlite", ":memory:")
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		db.Close()
	})

	provider := SetupWithDB(db)
	require.NoError(t, provider.Install())
	return provider
}

func TestInstallIsIdempotent(t *testing.T) {
	provider := newTestProvider(t)
	require.NoError(t, provider.Install())
	require.NoError(t, provider.Install())
}

func TestGroupSessionStore(t *testing.T) {
	provider := newTestProvider(t)
	ctx := context.Background()

	session := types.GroupSession{
		ID:        100,
		Passcode:  "ai1",
		GroupName: "TEAM ONE",
	}
	require.NoError(t, provider.GroupSessionStore().Create(ctx, session))

	got, err := provider.GroupSessionStore().Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, "TEAM ONE", got.GroupName)
	assert.NotZero(t, got.CreatedAt)

	got, err = provider.GroupSessionStore().GetByPasscode(ctx, "ai1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.ID)

	_, err = provider.GroupSessionStore().Get(ctx, 999)
	assert.Equal(t, sql.ErrNoRows, err)

	_, err = provider.GroupSessionStore().GetByPasscode(ctx, "nope")
	assert.Equal(t, sql.ErrNoRows, err)
}

func TestChatStoreOrdering(t *testing.T) {
	provider := newTestProvider(t)
	ctx := context.Background()

	require.NoError(t, provider.GroupSessionStore().Create(ctx, types.GroupSession{ID: 1, Passcode: "ai1", GroupName: "TEAM ONE"}))

	for i, access := range []int64{100, 300, 200} {
		require.NoError(t, provider.ChatStore().Create(ctx, types.Chat{
			ID:               int64(i + 1),
			SessionID:        1,
			LatestAccessTime: access,
		}))
	}

	latest, err := provider.ChatStore().GetLatestBySession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), latest.ID)

	list, err := provider.ChatStore().ListBySession(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, int64(3), list[1].ID)
	assert.Equal(t, int64(1), list[2].ID)

	require.NoError(t, provider.ChatStore().UpdateTitle(ctx, 1, "weather talk...", 400))
	got, err := provider.ChatStore().Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "weather talk...", got.Title)
	assert.Equal(t, int64(400), got.LatestAccessTime)

	require.NoError(t, provider.ChatStore().UpdateLatestAccessTime(ctx, 3, 500))
	latest, err = provider.ChatStore().GetLatestBySession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), latest.ID)

	_, err = provider.ChatStore().GetLatestBySession(ctx, 42)
	assert.Equal(t, sql.ErrNoRows, err)
}

func TestChatStoreDefaultTitle(t *testing.T) {
	provider := newTestProvider(t)
	ctx := context.Background()

	require.NoError(t, provider.GroupSessionStore().Create(ctx, types.GroupSession{ID: 1, Passcode: "ai1", GroupName: "TEAM ONE"}))
	require.NoError(t, provider.ChatStore().Create(ctx, types.Chat{ID: 1, SessionID: 1}))

	got, err := provider.ChatStore().Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, types.DEFAULT_CHAT_TITLE, got.Title)
}

func TestChatMessageStoreOrdering(t *testing.T) {
	provider := newTestProvider(t)
	ctx := context.Background()

	require.NoError(t, provider.GroupSessionStore().Create(ctx, types.GroupSession{ID: 1, Passcode: "ai1", GroupName: "TEAM ONE"}))
	require.NoError(t, provider.ChatStore().Create(ctx, types.Chat{ID: 1, SessionID: 1}))

	// Two messages share a send_time; id breaks the tie.
	rows := []types.ChatMessage{
		{ID: 10, ChatID: 1, Sender: types.USER_SENDER, Content: "first", SendTime: 100},
		{ID: 11, ChatID: 1, Sender: types.ASSISTANT_SENDER, Content: "second", SendTime: 100},
		{ID: 12, ChatID: 1, Sender: types.USER_SENDER, Content: "third", SendTime: 200},
	}
	for _, row := range rows {
		require.NoError(t, provider.ChatMessageStore().Create(ctx, row))
	}

	list, err := provider.ChatMessageStore().ListByChat(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Content)
	assert.Equal(t, "second", list[1].Content)
	assert.Equal(t, "third", list[2].Content)

	after, err := provider.ChatMessageStore().ListAfter(ctx, 1, 100)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "third", after[0].Content)

	after, err = provider.ChatMessageStore().ListAfter(ctx, 1, 200)
	require.NoError(t, err)
	assert.Empty(t, after)

	after, err = provider.ChatMessageStore().ListAfter(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, after, 3)
}

func TestTransactionRollback(t *testing.T) {
	provider := newTestProvider(t)
	ctx := context.Background()

	err := provider.Transaction(ctx, func(ctx context.Context) error {
		if err := provider.GroupSessionStore().Create(ctx, types.GroupSession{ID: 1, Passcode: "ai1", GroupName: "TEAM ONE"}); err != nil {
			return err
		}
		return fmt.Errorf("boom")
	})
	require.Error(t, err)

	_, err = provider.GroupSessionStore().Get(ctx, 1)
	assert.Equal(t, sql.ErrNoRows, err)
}

func TestTransactionCommit(t *testing.T) {
	provider := newTestProvider(t)
	ctx := context.Background()

	err := provider.Transaction(ctx, func(ctx context.Context) error {
		if err := provider.GroupSessionStore().Create(ctx, types.GroupSession{ID: 1, Passcode: "ai1", GroupName: "TEAM ONE"}); err != nil {
			return err
		}
		return provider.ChatStore().Create(ctx, types.Chat{ID: 2, SessionID: 1})
	})
	require.NoError(t, err)

	got, err := provider.ChatStore().Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.SessionID)
}
