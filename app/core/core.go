package core

import (
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/huddle-ai/huddle-ai/app/store"
	"github.com/huddle-ai/huddle-ai/app/store/sqlstore"
	"github.com/huddle-ai/huddle-ai/pkg/ai"
	"github.com/huddle-ai/huddle-ai/pkg/ai/gemini"
	"github.com/huddle-ai/huddle-ai/pkg/utils"
)

type Core struct {
	cfg CoreConfig

	store    store.Store
	aiDriver ai.ChatProvider

	httpEngine *gin.Engine
	metrics    *Metrics
}

// MustSetupCore wires the full service: logging, id worker, sqlite store
// (schema installed idempotently) and the Gemini driver.
func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	provider := sqlstore.MustSetup(cfg.SQLite)
	if err := provider.Install(); err != nil {
		panic(err)
	}

	return New(cfg, provider, gemini.New(cfg.AI.Gemini.Token, cfg.AI.Gemini.Model))
}

// New assembles a Core from explicit dependencies. Tests hand in a memory
// store and a fake ChatProvider here.
func New(cfg CoreConfig, s store.Store, driver ai.ChatProvider) *Core {
	utils.SetupIDWorker(0)

	return &Core{
		cfg:        cfg,
		store:      s,
		aiDriver:   driver,
		httpEngine: gin.New(),
		metrics:    NewMetrics("huddle", "core"),
	}
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) Store() store.Store {
	return s.store
}

func (s *Core) AI() ai.ChatProvider {
	return s.aiDriver
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}
