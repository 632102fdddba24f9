package input

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFlaky = errors.New("device hiccup")

// flakyReader fails the first `failures` reads, then delegates to r.
type flakyReader struct {
	r        io.Reader
	failures int
	calls    int
}

func (f *flakyReader) Read(p []byte) (int, error) {
	f.calls++
	if f.failures > 0 {
		f.failures--
		return 0, errFlaky
	}
	return f.r.Read(p)
}

func TestReadLine_ReturnsLinesInOrder(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader("  42\nabc\r\n\n"))
	ctx := context.Background()

	for _, want := range []string{"  42\n", "abc\r\n", "\n"} {
		got, err := r.ReadLine(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := r.ReadLine(ctx)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestReadLine_EmptyStreamIsClosed(t *testing.T) {
	t.Parallel()

	_, err := NewReader(strings.NewReader("")).ReadLine(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestReadLine_UnterminatedFinalLine(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader("12\n50"))
	ctx := context.Background()

	for _, want := range []string{"12\n", "50"} {
		got, err := r.ReadLine(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := r.ReadLine(ctx)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestReadLine_IOErrorIsFatalByDefault(t *testing.T) {
	t.Parallel()

	src := &flakyReader{r: strings.NewReader("7\n"), failures: 1}
	_, err := NewReader(src).ReadLine(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errFlaky)
	assert.NotErrorIs(t, err, ErrClosed)
	assert.Equal(t, 1, src.calls)
}

func TestReadLine_RetriesTransientErrors(t *testing.T) {
	t.Parallel()

	src := &flakyReader{r: strings.NewReader("7\n"), failures: 2}
	r := NewReader(src, WithRetry(2, time.Millisecond))

	got, err := r.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "7\n", got)
}

func TestReadLine_RetryBudgetExhausted(t *testing.T) {
	t.Parallel()

	src := &flakyReader{r: strings.NewReader("7\n"), failures: 3}
	r := NewReader(src, WithRetry(2, 0))

	_, err := r.ReadLine(context.Background())
	assert.ErrorIs(t, err, errFlaky)
}

func TestReadLine_KeepsPartialLineAcrossRetry(t *testing.T) {
	t.Parallel()

	src := iotest.OneByteReader(&flakyAfter{data: "42\n", failAt: 1})
	r := NewReader(src, WithRetry(1, 0))

	got, err := r.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "42\n", got)
}

func TestReadLine_EOFIsNeverRetried(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader(""), WithRetry(5, time.Hour))
	_, err := r.ReadLine(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestReadLine_CancelledWhileWaitingToRetry(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &flakyReader{r: strings.NewReader("7\n"), failures: 1}
	r := NewReader(src, WithRetry(1, time.Hour))

	_, err := r.ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// flakyAfter serves data one call at a time and fails exactly once, on
// call number failAt.
type flakyAfter struct {
	data   string
	failAt int
	calls  int
	pos    int
}

func (f *flakyAfter) Read(p []byte) (int, error) {
	f.calls++
	if f.calls-1 == f.failAt {
		return 0, errFlaky
	}
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}
