package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/guessgame/internal/ctxlog"
	"github.com/specialistvlad/guessgame/internal/game"
	"github.com/specialistvlad/guessgame/internal/input"
	"github.com/specialistvlad/guessgame/internal/messages"
	"github.com/specialistvlad/guessgame/internal/secret"
)

// Run plays one session to completion.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	n, err := a.secrets.Secret()
	if err != nil {
		return fmt.Errorf("failed to generate secret: %w", err)
	}
	a.logger.Debug("Secret generated.", "secret", n)

	reader := input.NewReader(a.in, input.WithRetry(a.model.Input.MaxReadRetries, a.model.Input.RetryInterval))
	catalog := messages.New(a.model.Messages, secret.Min, secret.Max)
	loop := game.New(n, reader, a.outW, catalog)

	if err := loop.Run(ctx); err != nil {
		a.logger.Debug("Session ended abnormally.", "attempts", loop.Attempts(), "error", err)
		return err
	}

	a.logger.Info("Session finished.")
	return nil
}
