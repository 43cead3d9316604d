// Package sqlite abre o banco embarcado usado pelo backend sqlite do Record Store
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vfg2006/dish-ranking-api/infrastructure/database"
	_ "modernc.org/sqlite"
)

type Connection struct {
	*sql.DB
	acquireTimeout time.Duration
}

// Open abre (ou cria) o arquivo do banco. O sqlite aceita um único escritor,
// então o pool é limitado a uma conexão; isso também mantém bancos ":memory:" consistentes.
func Open(ctx context.Context, path string, acquireTimeout time.Duration) (*Connection, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &Connection{DB: db, acquireTimeout: acquireTimeout}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.WithConn(ctx, func(conn *sql.Conn) error {
		return conn.PingContext(ctx)
	})
}

func (c *Connection) WithConn(ctx context.Context, fn func(*sql.Conn) error) error {
	return database.WithConn(ctx, c.DB, c.acquireTimeout, fn)
}

func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return rbErr
		}
		return err
	}

	return tx.Commit()
}
