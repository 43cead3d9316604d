package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/vfg2006/dish-ranking-api/infrastructure/database"
	"github.com/vfg2006/dish-ranking-api/internal/config"
)

// Conn é o que os repositórios precisam do pool. Toda consulta passa por WithConn
// para que a aquisição respeite o timeout configurado.
type Conn interface {
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
	WithConn(context.Context, func(*sql.Conn) error) error
	Stats() sql.DBStats
}

// Connection é o handle do pool de conexões, criado explicitamente e passado aos repositórios
type Connection struct {
	*sql.DB
	acquireTimeout time.Duration
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	configurePool(db, cfg)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &Connection{DB: db, acquireTimeout: cfg.AcquireTimeout}, nil
}

// Wrap cria uma Connection sobre um *sql.DB já aberto (usado pelos testes com sqlmock)
func Wrap(db *sql.DB, acquireTimeout time.Duration) *Connection {
	return &Connection{DB: db, acquireTimeout: acquireTimeout}
}

func configurePool(db *sql.DB, cfg config.Database) {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.WithConn(ctx, func(conn *sql.Conn) error {
		return conn.PingContext(ctx)
	})
}

// WithConn executa fn com uma conexão dedicada, respeitando o timeout de aquisição do pool
func (c *Connection) WithConn(ctx context.Context, fn func(*sql.Conn) error) error {
	return database.WithConn(ctx, c.DB, c.acquireTimeout, fn)
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return rbErr
		}
		return err
	}

	return tx.Commit()
}
