package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/dish-ranking-api/infrastructure/database/postgres"
	"github.com/vfg2006/dish-ranking-api/infrastructure/database/sqlite"
	"github.com/vfg2006/dish-ranking-api/infrastructure/migration"
	"github.com/vfg2006/dish-ranking-api/internal/config"
)

var (
	driverFlag string
	sqlitePath string
)

var rootCmd = &cobra.Command{
	Use:           "dbtool",
	Short:         "Cria e popula o Record Store da busca de pratos",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driverFlag, "driver", "",
		"Banco alvo: postgres ou sqlite (padrão: STORE_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite-path", "",
		"Arquivo do banco SQLite (padrão: SQLITE_PATH)")
}

// store é o banco aberto por um comando, com o dialeto correspondente
type store struct {
	runner  migration.TxRunner
	dialect migration.Dialect
	close   func() error
}

func openStore(ctx context.Context) (*store, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	driver := driverFlag
	if driver == "" {
		driver = cfg.Store.Driver
	}

	switch driver {
	case config.StoreDriverPostgres, config.StoreDriverGorm:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}

		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return &store{runner: conn, dialect: migration.Postgres, close: conn.Close}, nil

	case config.StoreDriverSQLite:
		path := sqlitePath
		if path == "" {
			path = cfg.SQLite.Path
		}

		conn, err := sqlite.Open(ctx, path, cfg.Database.AcquireTimeout)
		if err != nil {
			return nil, fmt.Errorf("erro ao abrir o banco SQLite: %w", err)
		}

		logrus.WithField("path", path).Info("Banco SQLite aberto com sucesso")
		return &store{runner: conn, dialect: migration.SQLite, close: conn.Close}, nil

	default:
		return nil, fmt.Errorf("driver sem suporte a migração: %q", driver)
	}
}
