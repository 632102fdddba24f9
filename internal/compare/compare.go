// Package compare orders a guess against the secret.
package compare

// Outcome is the ordering of a guess relative to the secret.
type Outcome int

const (
	Lower Outcome = iota
	Higher
	Equal
)

func (o Outcome) String() string {
	switch o {
	case Lower:
		return "lower"
	case Higher:
		return "higher"
	case Equal:
		return "equal"
	default:
		return "unknown"
	}
}

// Compare reports whether guess is Lower than, Higher than, or Equal to secret.
func Compare(guess, secret uint32) Outcome {
	switch {
	case guess < secret:
		return Lower
	case guess > secret:
		return Higher
	default:
		return Equal
	}
}
