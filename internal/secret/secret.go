package secret

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// The secret is always drawn from the inclusive range [Min, Max].
const (
	Min uint32 = 1
	Max uint32 = 100
)

// ErrEntropy is returned when the entropy source cannot be read.
var ErrEntropy = errors.New("entropy source unavailable")

// Source produces a secret number.
type Source interface {
	Secret() (uint32, error)
}

// CryptoSource draws uniformly distributed secrets from an entropy reader.
type CryptoSource struct {
	r io.Reader
}

// NewCryptoSource returns a Source backed by the operating system's CSPRNG.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{r: rand.Reader}
}

// NewCryptoSourceFrom returns a Source that reads entropy from r.
func NewCryptoSourceFrom(r io.Reader) *CryptoSource {
	return &CryptoSource{r: r}
}

// Secret returns a value uniformly distributed over [Min, Max].
func (s *CryptoSource) Secret() (uint32, error) {
	span := big.NewInt(int64(Max-Min) + 1)
	n, err := rand.Int(s.r, span)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEntropy, err)
	}
	return Min + uint32(n.Uint64()), nil
}

// Fixed is a Source that always returns the same value.
type Fixed uint32

// Secret returns the fixed value.
func (f Fixed) Secret() (uint32, error) {
	return uint32(f), nil
}
