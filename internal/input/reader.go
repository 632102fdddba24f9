// Package input reads the operator's guesses one line at a time.
//
// A closed stream is always fatal: once stdin reaches end of input there is
// no way to continue the session. Other read errors are fatal by default and
// may be retried a bounded number of times with WithRetry.
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/specialistvlad/guessgame/internal/ctxlog"
	"golang.org/x/time/rate"
)

// ErrClosed is returned when the input stream ends before a full line arrives.
var ErrClosed = errors.New("input stream closed")

// Reader is a blocking line reader over an io.Reader.
type Reader struct {
	br         *bufio.Reader
	maxRetries int
	limiter    *rate.Limiter
}

// Option configures a Reader.
type Option func(*Reader)

// WithRetry allows up to maxRetries retries of a failed read, spaced at
// least interval apart. End of input is never retried.
func WithRetry(maxRetries int, interval time.Duration) Option {
	return func(r *Reader) {
		if maxRetries <= 0 {
			return
		}
		r.maxRetries = maxRetries
		limit := rate.Inf
		if interval > 0 {
			limit = rate.Every(interval)
		}
		r.limiter = rate.NewLimiter(limit, 1)
	}
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	lr := &Reader{br: bufio.NewReader(r)}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// ReadLine blocks until a newline-terminated line is available and returns
// it unmodified, terminator included. A final line without a terminator is
// returned as-is; ErrClosed is reported only when nothing was read.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	logger := ctxlog.FromContext(ctx)

	// The first read consumes the limiter's burst so retries are paced.
	if r.limiter != nil {
		r.limiter.Allow()
	}

	var partial string
	for attempt := 0; ; attempt++ {
		line, err := r.br.ReadString('\n')
		line = partial + line
		if err == nil {
			return line, nil
		}
		if errors.Is(err, io.EOF) {
			if line != "" {
				logger.Debug("Returning unterminated final line.", "bytes", len(line))
				return line, nil
			}
			return "", ErrClosed
		}
		if attempt >= r.maxRetries {
			return "", fmt.Errorf("read line: %w", err)
		}

		partial = line
		logger.Warn("Read failed, retrying.", "error", err, "retry", attempt+1, "max_retries", r.maxRetries)
		if err := r.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("read line: %w", err)
		}
	}
}
