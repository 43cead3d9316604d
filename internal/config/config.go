package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Drivers de armazenamento suportados pelo Record Store
const (
	StoreDriverPostgres = "postgres"
	StoreDriverGorm     = "gorm"
	StoreDriverSQLite   = "sqlite"
	StoreDriverMemory   = "memory"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Store       Store       `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	SQLite      SQLite      `mapstructure:",squash"`
	Cors        Cors        `mapstructure:",squash"`
	PoolMonitor PoolMonitor `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	WriteTimeout    time.Duration `mapstructure:"server_write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"server_shutdown_timeout"`
}

type Store struct {
	Driver string `mapstructure:"store_driver"`
}

type Database struct {
	DSN             string        `mapstructure:"database_dsn"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	SSLMode         string        `mapstructure:"database_sslmode"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
	AcquireTimeout  time.Duration `mapstructure:"database_acquire_timeout"`
}

type SQLite struct {
	Path string `mapstructure:"sqlite_path"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type PoolMonitor struct {
	CronSchedule string `mapstructure:"pool_monitor_cron"`
	Enabled      bool   `mapstructure:"pool_monitor_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "15s")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("STORE_DRIVER", StoreDriverPostgres)

	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/restaurant_search")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "30s")
	viper.SetDefault("DATABASE_ACQUIRE_TIMEOUT", "2s")

	viper.SetDefault("SQLITE_PATH", "restaurant_search.db")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("POOL_MONITOR_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("POOL_MONITOR_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// Validate confere os valores que não têm como ser corrigidos em tempo de execução
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverGorm, StoreDriverSQLite, StoreDriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER inválido: %q", c.Store.Driver)
	}

	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("DATABASE_MAX_OPEN_CONNS deve ser positivo, recebido %d", c.Database.MaxOpenConns)
	}

	if c.Database.AcquireTimeout <= 0 {
		return fmt.Errorf("DATABASE_ACQUIRE_TIMEOUT deve ser positivo, recebido %s", c.Database.AcquireTimeout)
	}

	return nil
}

// BuildDSN monta a string de conexão. DATABASE_DSN tem prioridade sobre as partes separadas.
func BuildDSN(db Database) string {
	if db.DSN != "" {
		return sanitizeDSN(db.DSN)
	}

	dsn := fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		url.QueryEscape(db.User),
		url.QueryEscape(db.Password),
		db.URL,
	)

	if db.SSLMode != "" && !strings.Contains(db.URL, "sslmode=") {
		separator := "?"
		if strings.Contains(db.URL, "?") {
			separator = "&"
		}
		dsn = fmt.Sprintf("%s%ssslmode=%s", dsn, separator, db.SSLMode)
	}

	return dsn
}

// sanitizeDSN remove o ponto e vírgula codificado (%3B) que alguns provedores colocam no nome do banco
func sanitizeDSN(dsn string) string {
	parsed, err := url.Parse(dsn)
	if err != nil || parsed.Path == "" {
		return dsn
	}

	parsed.Path = strings.TrimSuffix(parsed.Path, ";")
	parsed.RawPath = ""

	return parsed.String()
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
