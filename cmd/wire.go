package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	chainkv "github.com/bnema/icebreaker-bingo/internal/adapters/kv/chain"
	filekv "github.com/bnema/icebreaker-bingo/internal/adapters/kv/file"
	memorykv "github.com/bnema/icebreaker-bingo/internal/adapters/kv/memory"
	sqlitekv "github.com/bnema/icebreaker-bingo/internal/adapters/kv/sqlite"
	tomlprompts "github.com/bnema/icebreaker-bingo/internal/adapters/prompts/toml"
	boardadapter "github.com/bnema/icebreaker-bingo/internal/adapters/render/board"
	"github.com/bnema/icebreaker-bingo/internal/application"
	"github.com/bnema/icebreaker-bingo/internal/domain"
	"github.com/bnema/icebreaker-bingo/internal/ports"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type app struct {
	cfg          *viper.Viper
	logger       zerolog.Logger
	backend      string
	store        *application.StateStore
	prompts      ports.PromptSource
	renderer     func(application.View, boardadapter.RenderOptions) (string, error)
	newRand      func() *rand.Rand
	closeBackend func() error
	live         *application.Session
}

func wireApp() (*app, error) {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.GetString(logLevelKey), os.Stderr)

	backend := strings.ToLower(strings.TrimSpace(cfg.GetString(stateBackendKey)))
	kv, closeBackend, err := openStateBackend(backend, cfg.GetString(stateDirKey), logger)
	if err != nil {
		return nil, fmt.Errorf("wire state backend: %w", err)
	}

	promptSource, err := tomlprompts.NewSource(cfg)
	if err != nil {
		_ = closeBackend()
		return nil, fmt.Errorf("wire prompt source: %w", err)
	}

	logger.Debug().Str("backend", backend).Msg("state backend ready")

	return &app{
		cfg:          cfg,
		logger:       logger,
		backend:      backend,
		store:        application.NewStateStore(kv, logger),
		prompts:      promptSource,
		renderer:     boardadapter.Render,
		newRand:      func() *rand.Rand { return nil },
		closeBackend: closeBackend,
	}, nil
}

func openStateBackend(backend, dir string, logger zerolog.Logger) (ports.KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch backend {
	case backendFile, "":
		return filekv.NewStore(dir), noop, nil
	case backendSQLite:
		store, err := sqlitekv.Open(filepath.Join(dir, sqliteFileName))
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case backendAuto:
		fallback := filekv.NewStore(dir)
		store, err := sqlitekv.Open(filepath.Join(dir, sqliteFileName))
		if err != nil {
			logger.Warn().Err(err).Msg("sqlite state backend unavailable, using files")
			return fallback, noop, nil
		}
		return chainkv.NewStore(store, fallback), store.Close, nil
	case backendMemory:
		return memorykv.NewStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown state backend %q", backend)
	}
}

// session restores the stored game on first use, so commands that only
// inspect the stored record never trigger the discard-on-load policy.
func (a *app) session(ctx context.Context) (*application.Session, error) {
	if a.live != nil {
		return a.live, nil
	}

	prompts, err := a.prompts.Prompts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load prompts: %w", err)
	}

	generator := domain.NewGenerator(prompts, a.newRand())
	a.live = application.NewSession(ctx, a.store, generator, a.logger)

	return a.live, nil
}

func (a *app) close() error {
	if a == nil || a.closeBackend == nil {
		return nil
	}
	return a.closeBackend()
}
