// Package database contém o controle de aquisição de conexões compartilhado pelos backends SQL
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrUnavailable indica que não foi possível obter uma conexão do pool dentro do tempo limite
var ErrUnavailable = errors.New("store unavailable")

// DefaultAcquireTimeout é usado quando nenhum tempo limite é configurado
const DefaultAcquireTimeout = 2 * time.Second

// WithConn empresta uma conexão do pool durante a execução de fn e a devolve em todos os caminhos de saída.
// Apenas a aquisição respeita o timeout; as consultas dentro de fn usam o ctx original.
func WithConn(ctx context.Context, db *sql.DB, timeout time.Duration, fn func(*sql.Conn) error) error {
	if timeout <= 0 {
		timeout = DefaultAcquireTimeout
	}

	acquireCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := db.Conn(acquireCtx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer conn.Close()

	return fn(conn)
}
