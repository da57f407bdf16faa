package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const FileName = "groundwork.config.json"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Version        string   `json:"version" mapstructure:"version"`
	MigrationsPath string   `json:"migrations_path" mapstructure:"migrations_path"`
	EnvFile        string   `json:"env_file" mapstructure:"env_file"`
	App            App      `json:"app" mapstructure:"app"`
	Database       Database `json:"database" mapstructure:"database"`
	Styler         Styler   `json:"styler" mapstructure:"styler"`
}

type App struct {
	Env    string `json:"env" mapstructure:"env"`
	EnvVar string `json:"env_var" mapstructure:"env_var"` // variable holding the environment name
	KeyEnv string `json:"key_env" mapstructure:"key_env"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	Driver   string `json:"driver,omitempty" mapstructure:"driver"` // optional override: pgx, pq, sqlite3, modernc
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Styler struct {
	Format            string   `json:"format" mapstructure:"format"`
	// Check is the check-only command. With the default gofmt -l it exits 0
	// and lists offending files, so any output counts as a failure unless
	// CheckExitCodeOnly is set.
	Check             string   `json:"check" mapstructure:"check"`
	CheckExitCodeOnly bool     `json:"check_exit_code_only" mapstructure:"check_exit_code_only"`
	Generate          []string `json:"generate" mapstructure:"generate"`
	GitAdd            string   `json:"git_add" mapstructure:"git_add"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = "1"
	}
	if c.MigrationsPath == "" {
		c.MigrationsPath = "db/migrations"
	}
	if c.EnvFile == "" {
		c.EnvFile = ".env"
	}
	if c.App.EnvVar == "" {
		c.App.EnvVar = "APP_ENV"
	}
	if c.App.KeyEnv == "" {
		c.App.KeyEnv = "APP_KEY"
	}
	if c.Database.Provider == "" {
		c.Database.Provider = "postgresql"
	}
	if c.Database.URLEnv == "" {
		c.Database.URLEnv = "DATABASE_URL"
	}
	if c.Styler.Format == "" {
		c.Styler.Format = "gofmt -l -w ."
	}
	if c.Styler.Check == "" {
		c.Styler.Check = "gofmt -l ."
	}
	if c.Styler.Generate == nil {
		c.Styler.Generate = []string{"go generate ./..."}
	}
	if c.Styler.GitAdd == "" {
		c.Styler.GitAdd = "git add ."
	}
}

// Environment resolves the application environment. The environment
// variable wins over the config file, and "local" is the fallback.
func (c *Config) Environment() string {
	if env := strings.TrimSpace(os.Getenv(c.App.EnvVar)); env != "" {
		return strings.ToLower(env)
	}
	if c.App.Env != "" {
		return strings.ToLower(c.App.Env)
	}
	return "local"
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) EnsureDirectories() error {
	if c.MigrationsPath == "" || c.MigrationsPath == "." {
		return nil
	}
	if err := os.MkdirAll(c.MigrationsPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.MigrationsPath, err)
	}
	return nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("%w: unsupported database provider: %s. Supported providers: %v",
			ErrInvalidConfig, c.Database.Provider, supportedProviders)
	}

	switch c.Database.Driver {
	case "", "pgx", "pq", "mysql", "sqlite3", "modernc":
	default:
		return fmt.Errorf("%w: unsupported database driver: %s", ErrInvalidConfig, c.Database.Driver)
	}

	if c.MigrationsPath == "" {
		return fmt.Errorf("%w: migrations_path cannot be empty", ErrInvalidConfig)
	}

	if c.App.KeyEnv == "" {
		return fmt.Errorf("%w: app.key_env cannot be empty", ErrInvalidConfig)
	}

	return nil
}
