package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Quiz     QuizConfig
	Log      LogConfig
	History  HistoryConfig
	Database DatabaseConfig
}

// QuizConfig holds word list and quiz settings
type QuizConfig struct {
	// Lists with at least this many lines offer the split/test menu
	MenuThreshold int `env:"VOCAB_MENU_THRESHOLD" env-default:"100"`
	// Lists with more lines than this ask how many words to test
	AskThreshold int    `env:"VOCAB_ASK_THRESHOLD" env-default:"30"`
	Extension    string `env:"VOCAB_EXTENSION" env-default:".voc"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"warn"`
	Format string `env:"LOG_FORMAT" env-default:"console"`
	File   string `env:"LOG_FILE"`
}

// HistoryConfig controls optional quiz history recording
type HistoryConfig struct {
	Enabled       bool `env:"HISTORY_ENABLED" env-default:"false"`
	RetentionDays int  `env:"HISTORY_RETENTION_DAYS" env-default:"60"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	Name     string `env:"DB_NAME" env-default:"vocabulaire"`
	User     string `env:"DB_USER" env-default:"vocabulaire"`
	Password string `env:"DB_PASSWORD"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if c.Quiz.MenuThreshold < 1 {
		return fmt.Errorf("VOCAB_MENU_THRESHOLD must be positive, got %d", c.Quiz.MenuThreshold)
	}
	if c.Quiz.AskThreshold < 0 {
		return fmt.Errorf("VOCAB_ASK_THRESHOLD cannot be negative, got %d", c.Quiz.AskThreshold)
	}
	if !strings.HasPrefix(c.Quiz.Extension, ".") || len(c.Quiz.Extension) < 2 {
		return fmt.Errorf("VOCAB_EXTENSION must look like \".voc\", got %q", c.Quiz.Extension)
	}
	if c.History.Enabled {
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when HISTORY_ENABLED is set")
		}
		if c.History.RetentionDays < 1 {
			return fmt.Errorf("HISTORY_RETENTION_DAYS must be positive, got %d", c.History.RetentionDays)
		}
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}
