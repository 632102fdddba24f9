package secret

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoSource_StaysInRange(t *testing.T) {
	t.Parallel()

	src := NewCryptoSource()
	seen := make(map[uint32]struct{})
	for i := 0; i < 2000; i++ {
		n, err := src.Secret()
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, Min)
		require.LessOrEqual(t, n, Max)
		seen[n] = struct{}{}
	}

	// 2000 draws over 100 values should hit far more than a handful.
	assert.Greater(t, len(seen), 50, "secrets do not look uniformly distributed")
}

func TestCryptoSource_DeterministicReader(t *testing.T) {
	t.Parallel()

	// A zero byte stream always yields the lower bound.
	src := NewCryptoSourceFrom(bytes.NewReader(make([]byte, 64)))
	n, err := src.Secret()
	require.NoError(t, err)
	assert.Equal(t, Min, n)
}

func TestCryptoSource_EntropyFailure(t *testing.T) {
	t.Parallel()

	src := NewCryptoSourceFrom(iotest.ErrReader(errors.New("no entropy today")))
	_, err := src.Secret()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEntropy)
	assert.Contains(t, err.Error(), "no entropy today")
}

func TestFixed(t *testing.T) {
	t.Parallel()

	n, err := Fixed(42).Secret()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), n)
}
