package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Seed          Seed          `mapstructure:",squash"`
	IngestionSync IngestionSync `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Path     string `mapstructure:"database_path"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Seed aponta para o dataset de terceiros usado na inicialização do banco
type Seed struct {
	URL     string        `mapstructure:"seed_url"`
	Timeout time.Duration `mapstructure:"seed_timeout"`
}

type IngestionSync struct {
	CronSchedule string `mapstructure:"ingestion_sync_cron"`
	Enabled      bool   `mapstructure:"ingestion_sync_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "3004")

	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_PATH", "transactionsData.db")
	v.SetDefault("DATABASE_URL", "localhost:5432/transactions?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")

	v.SetDefault("SEED_URL", "https://s3.amazonaws.com/roxiler.com/product_transaction.json")
	v.SetDefault("SEED_TIMEOUT", "30s")

	v.SetDefault("INGESTION_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	v.SetDefault("INGESTION_SYNC_ENABLED", false)

	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	switch config.Database.Driver {
	case DriverSQLite:
		if config.Database.Path == "" {
			return nil, fmt.Errorf("config: DATABASE_PATH é obrigatório para o driver %s", DriverSQLite)
		}
		// busy_timeout evita SQLITE_BUSY quando ingestões concorrentes escrevem ao mesmo tempo
		config.Database.DSN = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", config.Database.Path)
	case DriverPostgres:
		config.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			config.Database.Driver,
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
	default:
		return nil, fmt.Errorf("config: driver de banco de dados inválido: %q", config.Database.Driver)
	}

	if config.Seed.URL == "" {
		return nil, fmt.Errorf("config: SEED_URL não pode ser vazio")
	}

	if config.Seed.Timeout <= 0 {
		config.Seed.Timeout = 30 * time.Second
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
