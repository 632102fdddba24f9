// Package guess turns one raw line of operator input into a numeric guess.
package guess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid reports input that is not a base-10 non-negative integer.
// It is recoverable: the caller discards the attempt and prompts again.
var ErrInvalid = errors.New("invalid guess")

// Parse trims surrounding whitespace (including line terminators) from raw
// and parses the rest as an unsigned 32-bit decimal number. The value is not
// checked against the secret's range.
func Parse(raw string) (uint32, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalid)
	}

	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalid, text, err)
	}
	return uint32(n), nil
}
