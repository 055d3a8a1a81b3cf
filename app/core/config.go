package core

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr   string       `toml:"addr"`
	Log    Log          `toml:"log"`
	SQLite SQLiteConfig `toml:"sqlite"`
	AI     AIConfig     `toml:"ai"`

	// Passcodes maps each accepted passcode to its group display name.
	// Loaded once at process start and treated as immutable; changing the
	// table is a redeploy, not a data migration.
	Passcodes map[string]string `toml:"passcodes"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("HUDDLE_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.SQLite.FromENV()
	c.AI.FromENV()

	// HUDDLE_PASSCODES="ai1:TEAM ONE,ai2:TEAM TWO"
	if raw := os.Getenv("HUDDLE_PASSCODES"); raw != "" {
		c.Passcodes = make(map[string]string)
		for _, pair := range strings.Split(raw, ",") {
			parts := strings.SplitN(pair, ":", 2)
			if len(parts) != 2 {
				continue
			}
			c.Passcodes[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}
}

type SQLiteConfig struct {
	Path string `toml:"path"`
}

func (s *SQLiteConfig) FromENV() {
	s.Path = os.Getenv("HUDDLE_SQLITE_PATH")
}

func (s SQLiteConfig) FormatDSN() string {
	path := s.Path
	if path == "" {
		path = "huddle_chat.db"
	}
	return path + "?_pragma=foreign_keys(1)"
}

type AIConfig struct {
	Gemini GeminiConfig `toml:"gemini"`
}

func (a *AIConfig) FromENV() {
	a.Gemini.Token = os.Getenv("HUDDLE_AI_GEMINI_TOKEN")
	a.Gemini.Model = os.Getenv("HUDDLE_AI_GEMINI_MODEL")
}

type GeminiConfig struct {
	Token          string `toml:"token"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout bounds the model round trip, the only unbounded-latency call in
// the system.
func (g GeminiConfig) Timeout() time.Duration {
	if g.TimeoutSeconds <= 0 {
		return time.Second * 60
	}
	return time.Duration(g.TimeoutSeconds) * time.Second
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("HUDDLE_LOG_LEVEL")
	l.Path = os.Getenv("HUDDLE_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
