// Package messages renders the operator-facing text of a game session from
// the configured HCL templates.
package messages

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/guessgame/internal/config"
)

// Catalog evaluates message templates against the session's range and the
// current guess.
type Catalog struct {
	templates map[config.MessageKey]hcl.Expression
	min, max  uint32
}

// New returns a Catalog for the given templates and secret range.
func New(templates map[config.MessageKey]hcl.Expression, min, max uint32) *Catalog {
	return &Catalog{templates: templates, min: min, max: max}
}

// Render evaluates the template for key.
func (c *Catalog) Render(key config.MessageKey, guess uint32) (string, error) {
	expr, ok := c.templates[key]
	if !ok {
		return "", fmt.Errorf("message %q is not defined", key)
	}
	return config.EvalMessage(key, expr, config.MessageVars(key, c.min, c.max, guess))
}
