package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/guessgame/internal/config"
	"github.com/specialistvlad/guessgame/internal/ctxlog"
	"github.com/specialistvlad/guessgame/internal/secret"
)

// ErrConfig marks failures caused by invalid configuration, as opposed to
// failures during the session itself.
var ErrConfig = errors.New("configuration error")

// App encapsulates one session's dependencies and configuration.
type App struct {
	in      io.Reader
	outW    io.Writer
	logger  *slog.Logger
	model   *config.Model
	secrets secret.Source
}

// Option customizes an App.
type Option func(*App)

// WithSecretSource replaces the OS entropy source. Used by tests.
func WithSecretSource(src secret.Source) Option {
	return func(a *App) {
		a.secrets = src
	}
}

// NewApp builds an App that reads guesses from in, writes game text to outW
// and logs to logW. Configuration files named by cfg are loaded with loader.
func NewApp(in io.Reader, outW, logW io.Writer, cfg *Config, loader config.Loader, opts ...Option) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var paths []string
	if cfg.ConfigPath != "" {
		paths = append(paths, cfg.ConfigPath)
	}
	model, err := loader.Load(ctx, paths...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load configuration: %w", ErrConfig, err)
	}
	logger.Debug("Configuration loaded.", "config_path", cfg.ConfigPath)

	a := &App{
		in:      in,
		outW:    outW,
		logger:  logger,
		model:   model,
		secrets: secret.NewCryptoSource(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}
