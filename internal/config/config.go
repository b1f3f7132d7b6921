// Package config loads server configuration from an optional YAML file with
// WUMPUS_ environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// DatabaseConfig selects postgres persistence. An empty DSN keeps all state
// in memory.
type DatabaseConfig struct {
	DSN     string `mapstructure:"dsn"`
	Migrate bool   `mapstructure:"migrate"`
}

// RedisConfig selects the redsync session lock. An empty Addr uses an
// in-process lock.
type RedisConfig struct {
	Addr       string        `mapstructure:"addr"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	LockExpiry time.Duration `mapstructure:"lock_expiry"`
}

type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is "json" or "console".
	Format string `mapstructure:"format"`
}

type GameConfig struct {
	BoardSize     int    `mapstructure:"board_size"`
	MaxActions    int    `mapstructure:"max_actions"`
	InitialArrows int    `mapstructure:"initial_arrows"`
	MinPits       int    `mapstructure:"min_pits"`
	MaxPits       int    `mapstructure:"max_pits"`
	PresetsFile   string `mapstructure:"presets_file"`
}

type HTTPConfig struct {
	OperatorToken  string   `mapstructure:"operator_token"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Game     GameConfig     `mapstructure:"game"`
	HTTP     HTTPConfig     `mapstructure:"http"`
}

// Validate reports every violation at once.
func (c Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, "server.addr must not be empty")
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Redis.LockExpiry < 0 {
		errs = append(errs, "redis.lock_expiry must not be negative")
	}
	if c.Redis.DB < 0 {
		errs = append(errs, fmt.Sprintf("redis.db must be >= 0, got %d", c.Redis.DB))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	if l.Format != "json" && l.Format != "console" {
		errs = append(errs, fmt.Sprintf("logging.format must be json or console, got %q", l.Format))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.BoardSize < 2 || g.BoardSize > 64 {
		errs = append(errs, fmt.Sprintf("game.board_size must be 2-64, got %d", g.BoardSize))
	}
	if g.MaxActions < 0 {
		errs = append(errs, fmt.Sprintf("game.max_actions must be >= 0, got %d", g.MaxActions))
	}
	if g.InitialArrows < 0 {
		errs = append(errs, fmt.Sprintf("game.initial_arrows must be >= 0, got %d", g.InitialArrows))
	}
	if g.MinPits < 0 {
		errs = append(errs, fmt.Sprintf("game.min_pits must be >= 0, got %d", g.MinPits))
	}
	if g.MaxPits < g.MinPits {
		errs = append(errs, "game.max_pits must not be below game.min_pits")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads the YAML file at path when path is not empty, applies WUMPUS_
// environment overrides (WUMPUS_DATABASE_DSN for database.dsn) and validates
// the result.
func Load(path string) (Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("WUMPUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")

	v.SetDefault("database.dsn", "")
	v.SetDefault("database.migrate", true)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.lock_expiry", "10s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("game.board_size", 10)
	v.SetDefault("game.max_actions", 1000)
	v.SetDefault("game.initial_arrows", 1)
	v.SetDefault("game.min_pits", 3)
	v.SetDefault("game.max_pits", 6)
	v.SetDefault("game.presets_file", "")

	v.SetDefault("http.operator_token", "")
	v.SetDefault("http.allowed_origins", []string{"*"})
}
