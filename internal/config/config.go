package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Dataset      Dataset      `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	AICoach      AICoach      `mapstructure:",squash"`
	DatasetSync  DatasetSync  `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
}

// Dataset points at the directory holding the CSV files
type Dataset struct {
	Dir string `mapstructure:"dataset_dir"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// AICoach configures the Anthropic Messages API bridge. An empty API key
// disables the coach and the endpoints answer with a fixed fallback message.
type AICoach struct {
	APIKey                string `mapstructure:"anthropic_api_key"`
	BaseURL               string `mapstructure:"anthropic_base_url"`
	Version               string `mapstructure:"anthropic_version"`
	Model                 string `mapstructure:"anthropic_model"`
	MaxTokens             int    `mapstructure:"anthropic_max_tokens"`
	RequestTimeoutSeconds int    `mapstructure:"anthropic_request_timeout_seconds"`
	MaxChatTurns          int    `mapstructure:"coach_chat_max_turns"`
}

type DatasetSync struct {
	CronSchedule string `mapstructure:"dataset_sync_cron"`
	Enabled      bool   `mapstructure:"dataset_sync_enabled"`
}

type SnapshotSync struct {
	CronSchedule    string `mapstructure:"snapshot_sync_cron"`
	Enabled         bool   `mapstructure:"snapshot_sync_enabled"`
	RetentionMonths int    `mapstructure:"snapshot_retention_months"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/coach")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("DATASET_DIR", "./data")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("ANTHROPIC_API_KEY", "")
	viper.SetDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com")
	viper.SetDefault("ANTHROPIC_VERSION", "2023-06-01")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-sonnet-4-20250514")
	viper.SetDefault("ANTHROPIC_MAX_TOKENS", 1024)
	viper.SetDefault("ANTHROPIC_REQUEST_TIMEOUT_SECONDS", 60)
	viper.SetDefault("COACH_CHAT_MAX_TURNS", 20)

	// Reload the CSV directory every morning before the working day
	viper.SetDefault("DATASET_SYNC_CRON", "0 6 * * *")
	viper.SetDefault("DATASET_SYNC_ENABLED", true)

	// Persist team aggregates shortly after the monthly files land
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "30 6 1 * *")
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)
	viper.SetDefault("SNAPSHOT_RETENTION_MONTHS", 24)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded from the environment (viper could not read .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine the current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Loaded .env from:", location)
			return
		}
	}

	logrus.Debug("No .env file found, relying on process environment")
}
