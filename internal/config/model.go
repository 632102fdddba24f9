package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/guessgame/internal/secret"
)

// MessageKey names one piece of operator-facing text.
type MessageKey string

const (
	MessageStart    MessageKey = "start"
	MessagePrompt   MessageKey = "prompt"
	MessageConfirm  MessageKey = "confirm"
	MessageTooSmall MessageKey = "too_small"
	MessageTooBig   MessageKey = "too_big"
	MessageWin      MessageKey = "win"
	MessageFarewell MessageKey = "farewell"
)

// Template variables.
const (
	VarMin   = "min"
	VarMax   = "max"
	VarGuess = "guess"
)

var messageKeys = []MessageKey{
	MessageStart,
	MessagePrompt,
	MessageConfirm,
	MessageTooSmall,
	MessageTooBig,
	MessageWin,
	MessageFarewell,
}

var defaultMessages = map[MessageKey]string{
	MessageStart:    "Guess the number",
	MessagePrompt:   "Please input your guess.",
	MessageConfirm:  "You guessed: ${guess}",
	MessageTooSmall: "too small",
	MessageTooBig:   "too big",
	MessageWin:      "You win!",
	MessageFarewell: "Let's play again! See ya!",
}

// MessageKeys returns every known message key in output order.
func MessageKeys() []MessageKey {
	return slices.Clone(messageKeys)
}

// Known reports whether k is a message the game emits.
func (k MessageKey) Known() bool {
	return slices.Contains(messageKeys, k)
}

// HasGuess reports whether the message is rendered after a guess was parsed,
// and may therefore reference the guess variable.
func (k MessageKey) HasGuess() bool {
	switch k {
	case MessageStart, MessagePrompt:
		return false
	default:
		return true
	}
}

// Variables lists the template variables available to the message.
func (k MessageKey) Variables() []string {
	if k.HasGuess() {
		return []string{VarMin, VarMax, VarGuess}
	}
	return []string{VarMin, VarMax}
}

// InputPolicy controls how read failures on the input stream are handled.
// The zero value fails on the first error.
type InputPolicy struct {
	MaxReadRetries int
	RetryInterval  time.Duration
}

// Model is the complete configuration of a game session.
type Model struct {
	Messages map[MessageKey]hcl.Expression
	Input    InputPolicy
}

// Default returns the built-in configuration.
func Default() *Model {
	m := &Model{
		Messages: make(map[MessageKey]hcl.Expression, len(defaultMessages)),
	}
	for key, text := range defaultMessages {
		m.Messages[key] = mustParseTemplate(key, text)
	}
	return m
}

// ParseTemplate parses text as an HCL template for the given message.
func ParseTemplate(key MessageKey, text string) (hcl.Expression, error) {
	expr, diags := hclsyntax.ParseTemplate([]byte(text), "<message "+string(key)+">", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid template for message %q: %w", key, diags)
	}
	return expr, nil
}

func mustParseTemplate(key MessageKey, text string) hcl.Expression {
	expr, err := ParseTemplate(key, text)
	if err != nil {
		panic(err)
	}
	return expr
}

// ValidateMessage checks that expr only references variables available to key.
func ValidateMessage(key MessageKey, expr hcl.Expression) error {
	if !key.Known() {
		return fmt.Errorf("unknown message %q", key)
	}
	allowed := key.Variables()
	for _, traversal := range expr.Variables() {
		name := traversal.RootName()
		if !slices.Contains(allowed, name) {
			return fmt.Errorf("message %q references unknown variable %q (available: %v)", key, name, allowed)
		}
	}
	return nil
}

// Validate checks the whole model.
func (m *Model) Validate() error {
	for _, key := range messageKeys {
		expr, ok := m.Messages[key]
		if !ok || expr == nil {
			return fmt.Errorf("message %q is not defined", key)
		}
	}
	for key, expr := range m.Messages {
		if err := ValidateMessage(key, expr); err != nil {
			return err
		}
		// Every template must render, or a session could fail after a correct guess.
		vars := MessageVars(key, secret.Min, secret.Max, secret.Max)
		if _, err := EvalMessage(key, expr, vars); err != nil {
			return err
		}
	}
	if m.Input.MaxReadRetries < 0 {
		return fmt.Errorf("max_read_retries must not be negative, got %d", m.Input.MaxReadRetries)
	}
	if m.Input.RetryInterval < 0 {
		return fmt.Errorf("retry_interval must not be negative, got %s", m.Input.RetryInterval)
	}
	return nil
}
