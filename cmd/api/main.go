package main

import (
	"context"
	"math/rand"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dish-ranking-api/infrastructure/database/postgres"
	"github.com/vfg2006/dish-ranking-api/infrastructure/database/sqlite"
	"github.com/vfg2006/dish-ranking-api/infrastructure/migration"
	"github.com/vfg2006/dish-ranking-api/infrastructure/repository"
	"github.com/vfg2006/dish-ranking-api/internal/api"
	"github.com/vfg2006/dish-ranking-api/internal/config"
	"github.com/vfg2006/dish-ranking-api/internal/scheduler"
	"github.com/vfg2006/dish-ranking-api/internal/usecases/ranking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dishSearchRepo, pool, closeStore := openStore(ctx, cfg)
	defer closeStore()

	rankingService := ranking.NewDishRankingService(dishSearchRepo)

	poolMonitorService := scheduler.NewPoolMonitorService(pool, cfg)
	if err := poolMonitorService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o monitor do pool de conexões")
	}

	server, err := api.New(cfg, rankingService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// openStore abre o Record Store escolhido por STORE_DRIVER. O pool retornado é nil
// quando o backend não usa conexões SQL.
func openStore(ctx context.Context, cfg *config.Config) (repository.DishSearchRepository, scheduler.StatsProvider, func()) {
	switch cfg.Store.Driver {
	case config.StoreDriverGorm:
		conn := pgconn(ctx, cfg.Database)

		gormDB, err := postgres.OpenGorm(conn)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao inicializar o gorm")
		}

		return repository.NewGormDishSearchRepository(gormDB, cfg.Database.AcquireTimeout), conn, closer(conn.Close)

	case config.StoreDriverSQLite:
		conn, err := sqlite.Open(ctx, cfg.SQLite.Path, cfg.Database.AcquireTimeout)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao abrir o banco SQLite")
		}

		logrus.WithField("path", cfg.SQLite.Path).Info("Banco SQLite aberto com sucesso")
		return repository.NewSQLiteDishSearchRepository(conn), conn, closer(conn.Close)

	case config.StoreDriverMemory:
		dataset, err := migration.DemoDataset(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now())
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao gerar o dataset de demonstração")
		}

		repo, err := repository.NewMemoryDishSearchRepository(dataset)
		if err != nil {
			logrus.WithError(err).Fatal("Dataset de demonstração inválido")
		}

		logrus.WithFields(logrus.Fields{
			"restaurants": len(dataset.Restaurants),
			"menu_items":  len(dataset.MenuItems),
			"orders":      len(dataset.Orders),
		}).Info("Record Store em memória carregado com o dataset de demonstração")
		return repo, nil, func() {}

	default:
		conn := pgconn(ctx, cfg.Database)
		return repository.NewDishSearchRepository(conn), conn, closer(conn.Close)
	}
}

func closer(closeFn func() error) func() {
	return func() {
		if err := closeFn(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar o Record Store")
		}
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
