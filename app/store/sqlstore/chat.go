package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/huddle-ai/huddle-ai/pkg/types"
)

type ChatStore struct {
	CommonFields
}

func NewChatStore(provider SqlProviderAchieve) *ChatStore {
	repo := &ChatStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_CHAT)
	repo.SetAllColumns("id", "session_id", "title", "latest_access_time")
	return repo
}

func (s *ChatStore) Create(ctx context.Context, data types.Chat) error {
	if data.Title == "" {
		data.Title = types.DEFAULT_CHAT_TITLE
	}
	if data.LatestAccessTime == 0 {
		data.LatestAccessTime = time.Now().Unix()
	}

	query := sq.Insert(s.GetTable()).
		Columns("id", "session_id", "title", "latest_access_time").
		Values(data.ID, data.SessionID, data.Title, data.LatestAccessTime)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	if _, err = s.GetMaster(ctx).Exec(queryString, args...); err != nil {
		return err
	}
	return nil
}

func (s *ChatStore) Get(ctx context.Context, id int64) (*types.Chat, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Chat
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *ChatStore) GetLatestBySession(ctx context.Context, sessionID int64) (*types.Chat, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("latest_access_time DESC").
		Limit(1)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Chat
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *ChatStore) ListBySession(ctx context.Context, sessionID int64) ([]types.Chat, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("latest_access_time DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var list []types.Chat
	if err = s.GetReplica(ctx).Select(&list, queryString, args...); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *ChatStore) UpdateTitle(ctx context.Context, id int64, title string, accessTime int64) error {
	query := sq.Update(s.GetTable()).Where(sq.Eq{"id": id}).
		Set("title", title).
		Set("latest_access_time", accessTime)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	if _, err = s.GetMaster(ctx).Exec(queryString, args...); err != nil {
		return err
	}
	return nil
}

func (s *ChatStore) UpdateLatestAccessTime(ctx context.Context, id, accessTime int64) error {
	query := sq.Update(s.GetTable()).Where(sq.Eq{"id": id}).Set("latest_access_time", accessTime)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	if _, err = s.GetMaster(ctx).Exec(queryString, args...); err != nil {
		return err
	}
	return nil
}
