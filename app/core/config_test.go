package core

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBaseConfigFromTOML(t *testing.T) {
	raw := `
addr = ":8080"

[log]
level = "info"

[sqlite]
path = "/tmp/huddle_test.db"

[ai.gemini]
token = "test-token"
model = "gemini-2.5-flash"
timeout_seconds = 30

[passcodes]
ai1 = "TEAM ONE"
ai2 = "TEAM TWO"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg := MustLoadBaseConfig(path)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "TEAM ONE", cfg.Passcodes["ai1"])
	assert.Equal(t, "TEAM TWO", cfg.Passcodes["ai2"])
	assert.Equal(t, time.Second*30, cfg.AI.Gemini.Timeout())
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "/tmp/huddle_test.db?_pragma=foreign_keys(1)", cfg.SQLite.FormatDSN())
}

func TestLoadBaseConfigFromENV(t *testing.T) {
	t.Setenv("HUDDLE_SERVICE_ADDRESS", ":9090")
	t.Setenv("HUDDLE_PASSCODES", "ai1:TEAM ONE,ai2:TEAM TWO, broken ,ai3:TEAM THREE")
	t.Setenv("HUDDLE_AI_GEMINI_TOKEN", "env-token")

	cfg := MustLoadBaseConfig("")
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "env-token", cfg.AI.Gemini.Token)
	assert.Equal(t, map[string]string{
		"ai1": "TEAM ONE",
		"ai2": "TEAM TWO",
		"ai3": "TEAM THREE",
	}, cfg.Passcodes)
}

func TestConfigDefaults(t *testing.T) {
	var cfg CoreConfig
	assert.Equal(t, "huddle_chat.db?_pragma=foreign_keys(1)", cfg.SQLite.FormatDSN())
	assert.Equal(t, time.Second*60, cfg.AI.Gemini.Timeout())
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}
