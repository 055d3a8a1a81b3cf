package sqlstore

import (
	"context"
	_ "embed"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/huddle-ai/huddle-ai/app/store"
)

func init() {
	sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

//go:embed schema.sql
var createTableSQL string

type ConnectConfig interface {
	FormatDSN() string
}

type Provider struct {
	db     *sqlx.DB
	stores *Stores
}

type Stores struct {
	store.GroupSessionStore
	store.ChatStore
	store.ChatMessageStore
}

func MustSetup(cfg ConnectConfig) *Provider {
	db := sqlx.MustOpen("sqlite", cfg.FormatDSN())
	// One writer connection total. SQLite has a single-writer model anyway,
	// and capping the pool serializes concurrent message inserts so timestamp
	// order and insertion order cannot diverge.
	db.SetMaxOpenConns(1)

	return SetupWithDB(db)
}

func SetupWithDB(db *sqlx.DB) *Provider {
	provider := &Provider{
		db:     db,
		stores: &Stores{},
	}
	provider.stores.GroupSessionStore = NewGroupSessionStore(provider)
	provider.stores.ChatStore = NewChatStore(provider)
	provider.stores.ChatMessageStore = NewChatMessageStore(provider)
	return provider
}

// Install creates the tables if they do not exist. Safe to run on every
// process start and on demand.
func (p *Provider) Install() error {
	if _, err := p.GetMaster().Exec(createTableSQL); err != nil {
		return err
	}
	return nil
}

func (p *Provider) GroupSessionStore() store.GroupSessionStore {
	return p.stores.GroupSessionStore
}

func (p *Provider) ChatStore() store.ChatStore {
	return p.stores.ChatStore
}

func (p *Provider) ChatMessageStore() store.ChatMessageStore {
	return p.stores.ChatMessageStore
}

func (p *Provider) GetMaster() *sqlx.DB {
	return p.db
}

func (p *Provider) GetReplica() *sqlx.DB {
	return p.db
}

type TransactionKey struct{}

func (p *Provider) GetTxFromCtx(ctx context.Context) *sqlx.Tx {
	if driver, ok := ctx.Value(TransactionKey{}).(*sqlx.Tx); ok {
		return driver
	}
	return nil
}

func (p *Provider) Transaction(ctx context.Context, next func(ctx context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if _, ok := ctx.Value(TransactionKey{}).(*sqlx.Tx); ok {
		return next(ctx)
	}

	var (
		tx  *sqlx.Tx
		err error
	)
	if tx, err = p.GetMaster().BeginTxx(ctx, nil); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil || err != nil {
			slog.Error("Transaction rollbacked", slog.Any("recover", r), slog.Any("error", err))
			_ = tx.Rollback()
			return
		}
	}()

	if err = next(context.WithValue(ctx, TransactionKey{}, tx)); err != nil {
		return err
	}

	return tx.Commit()
}
