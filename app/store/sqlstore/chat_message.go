package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/huddle-ai/huddle-ai/pkg/types"
)

type ChatMessageStore struct {
	CommonFields
}

func NewChatMessageStore(provider SqlProviderAchieve) *ChatMessageStore {
	repo := &ChatMessageStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_CHAT_MESSAGE)
	repo.SetAllColumns("id", "chat_id", "sender", "content", "send_time")
	return repo
}

func (s *ChatMessageStore) Create(ctx context.Context, data types.ChatMessage) error {
	if data.SendTime == 0 {
		data.SendTime = time.Now().Unix()
	}

	query := sq.Insert(s.GetTable()).
		Columns("id", "chat_id", "sender", "content", "send_time").
		Values(data.ID, data.ChatID, data.Sender, data.Content, data.SendTime)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	if _, err = s.GetMaster(ctx).Exec(queryString, args...); err != nil {
		return err
	}
	return nil
}

// ListByChat returns the chat's full history in insertion order. Ties on
// send_time break on id, which is monotonic.
func (s *ChatMessageStore) ListByChat(ctx context.Context, chatID int64) ([]types.ChatMessage, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"chat_id": chatID}).
		OrderBy("send_time ASC", "id ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var list []types.ChatMessage
	if err = s.GetReplica(ctx).Select(&list, queryString, args...); err != nil {
		return nil, err
	}
	return list, nil
}

// ListAfter returns messages strictly newer than the watermark.
func (s *ChatMessageStore) ListAfter(ctx context.Context, chatID, watermark int64) ([]types.ChatMessage, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"chat_id": chatID}).
		Where(sq.Gt{"send_time": watermark}).
		OrderBy("send_time ASC", "id ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var list []types.ChatMessage
	if err = s.GetReplica(ctx).Select(&list, queryString, args...); err != nil {
		return nil, err
	}
	return list, nil
}
