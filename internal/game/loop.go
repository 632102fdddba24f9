package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/guessgame/internal/compare"
	"github.com/specialistvlad/guessgame/internal/config"
	"github.com/specialistvlad/guessgame/internal/ctxlog"
	"github.com/specialistvlad/guessgame/internal/guess"
)

// LineReader supplies one raw line of operator input per call.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Renderer produces the text of a message.
type Renderer interface {
	Render(key config.MessageKey, guess uint32) (string, error)
}

// Loop is a single game session. The secret is fixed at construction.
type Loop struct {
	secret uint32
	in     LineReader
	out    io.Writer
	msgs   Renderer

	state    State
	started  bool
	attempts int

	// Per-attempt values, discarded when the loop returns to Prompting.
	raw     string
	guess   uint32
	outcome compare.Outcome
}

// New returns a Loop in the Prompting state.
func New(secret uint32, in LineReader, out io.Writer, msgs Renderer) *Loop {
	return &Loop{
		secret: secret,
		in:     in,
		out:    out,
		msgs:   msgs,
		state:  Prompting,
	}
}

// State returns the current state.
func (l *Loop) State() State {
	return l.state
}

// Attempts returns the number of lines read so far, including rejected ones.
func (l *Loop) Attempts() int {
	return l.attempts
}

// Run drives the state machine until the secret is guessed or a fatal error
// occurs. It has no iteration limit.
func (l *Loop) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Game loop started.")

	for l.state != Terminated {
		if err := l.step(ctx); err != nil {
			logger.Debug("Game loop aborted.", "state", l.state, "attempts", l.attempts, "error", err)
			return err
		}
	}

	logger.Debug("Game loop finished.", "attempts", l.attempts)
	return nil
}

// step performs the work of the current state and moves to the next one.
func (l *Loop) step(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	switch l.state {
	case Prompting:
		if err := ctx.Err(); err != nil {
			return err
		}
		if !l.started {
			if err := l.emit(config.MessageStart, 0); err != nil {
				return err
			}
			l.started = true
		}
		if err := l.emit(config.MessagePrompt, 0); err != nil {
			return err
		}
		l.state = AwaitingInput

	case AwaitingInput:
		raw, err := l.in.ReadLine(ctx)
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}
		l.attempts++
		l.raw = raw
		l.state = Parsing

	case Parsing:
		g, err := guess.Parse(l.raw)
		if err != nil {
			if !errors.Is(err, guess.ErrInvalid) {
				return err
			}
			logger.Debug("Discarding attempt.", "attempt", l.attempts, "reason", err)
			l.reset()
			return nil
		}
		l.guess = g
		if err := l.emit(config.MessageConfirm, g); err != nil {
			return err
		}
		l.state = Comparing

	case Comparing:
		l.outcome = compare.Compare(l.guess, l.secret)
		logger.Debug("Guess compared.", "attempt", l.attempts, "guess", l.guess, "outcome", l.outcome)

		switch l.outcome {
		case compare.Lower:
			if err := l.emit(config.MessageTooSmall, l.guess); err != nil {
				return err
			}
			l.reset()
		case compare.Higher:
			if err := l.emit(config.MessageTooBig, l.guess); err != nil {
				return err
			}
			l.reset()
		case compare.Equal:
			if err := l.emit(config.MessageWin, l.guess); err != nil {
				return err
			}
			if err := l.emit(config.MessageFarewell, l.guess); err != nil {
				return err
			}
			l.state = Terminated
		}

	case Terminated:
		return nil

	default:
		return fmt.Errorf("game: invalid state %d", l.state)
	}
	return nil
}

// reset discards the current attempt and returns to Prompting.
func (l *Loop) reset() {
	l.raw = ""
	l.guess = 0
	l.state = Prompting
}

// emit renders a message and writes it as one line. Empty messages are skipped.
func (l *Loop) emit(key config.MessageKey, g uint32) error {
	text, err := l.msgs.Render(key, g)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	if _, err := fmt.Fprintln(l.out, text); err != nil {
		return fmt.Errorf("write %s message: %w", key, err)
	}
	return nil
}
