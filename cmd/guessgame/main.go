package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/guessgame/internal/app"
	"github.com/specialistvlad/guessgame/internal/cli"
	"github.com/specialistvlad/guessgame/internal/hcl_adapter"
)

// main is the entrypoint for the guessgame application.
func main() {
	// Use a minimal logger until the session logger is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(in io.Reader, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	session, err := app.NewApp(in, outW, errW, appConfig, hcl_adapter.NewLoader())
	if err != nil {
		code := cli.ExitFailure
		if errors.Is(err, app.ErrConfig) {
			code = cli.ExitConfigError
		}
		return &cli.ExitError{Code: code, Message: err.Error()}
	}

	if err := session.Run(context.Background()); err != nil {
		return &cli.ExitError{Code: cli.ExitFailure, Message: err.Error()}
	}
	return nil
}
