package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/huddle-ai/huddle-ai/pkg/types"
)

type GroupSessionStore struct {
	CommonFields
}

func NewGroupSessionStore(provider SqlProviderAchieve) *GroupSessionStore {
	repo := &GroupSessionStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_GROUP_SESSION)
	repo.SetAllColumns("id", "passcode", "group_name", "created_at")
	return repo
}

func (s *GroupSessionStore) Create(ctx context.Context, data types.GroupSession) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}

	query := sq.Insert(s.GetTable()).
		Columns("id", "passcode", "group_name", "created_at").
		Values(data.ID, data.Passcode, data.GroupName, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	if _, err = s.GetMaster(ctx).Exec(queryString, args...); err != nil {
		return err
	}
	return nil
}

func (s *GroupSessionStore) Get(ctx context.Context, id int64) (*types.GroupSession, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.GroupSession
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *GroupSessionStore) GetByPasscode(ctx context.Context, passcode string) (*types.GroupSession, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"passcode": passcode})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.GroupSession
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}
