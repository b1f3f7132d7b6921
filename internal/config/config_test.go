package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Server:  ServerConfig{Addr: ":8080"},
		Redis:   RedisConfig{LockExpiry: 10 * time.Second},
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Game: GameConfig{
			BoardSize:     10,
			MaxActions:    1000,
			InitialArrows: 1,
			MinPits:       3,
			MaxPits:       6,
		},
	}
}

func TestValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Addr = ""
	cfg.Logging.Level = "loud"
	cfg.Game.BoardSize = 1
	cfg.Game.MaxPits = 1

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"server.addr", "logging.level", "game.board_size", "game.max_pits"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.Game.BoardSize)
	assert.Equal(t, 1000, cfg.Game.MaxActions)
	assert.Equal(t, 10*time.Second, cfg.Redis.LockExpiry)
	assert.Empty(t, cfg.Database.DSN)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  addr: ":9090"
game:
  board_size: 6
logging:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("WUMPUS_GAME_BOARD_SIZE", "8")
	t.Setenv("WUMPUS_DATABASE_DSN", "postgres://localhost/wumpus")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 8, cfg.Game.BoardSize)
	assert.Equal(t, "postgres://localhost/wumpus", cfg.Database.DSN)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidFileFailsValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: xml\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
}

func TestProperty_BoardSizeRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(-10, 100).Draw(rt, "size")
		cfg := validConfig()
		cfg.Game.BoardSize = size
		err := cfg.Validate()
		if size >= 2 && size <= 64 {
			if err != nil {
				rt.Fatalf("size %d should be valid: %v", size, err)
			}
		} else if err == nil {
			rt.Fatalf("size %d should be rejected", size)
		}
	})
}
