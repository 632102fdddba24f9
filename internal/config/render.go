package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// MessageVars builds the template variables available to key. The guess is
// only exposed to messages emitted after a guess was parsed.
func MessageVars(key MessageKey, min, max, guess uint32) map[string]cty.Value {
	vars := map[string]cty.Value{
		VarMin: cty.NumberUIntVal(uint64(min)),
		VarMax: cty.NumberUIntVal(uint64(max)),
	}
	if key.HasGuess() {
		vars[VarGuess] = cty.NumberUIntVal(uint64(guess))
	}
	return vars
}

// EvalMessage evaluates expr with vars and converts the result to a string.
// A null result renders as the empty string.
func EvalMessage(key MessageKey, expr hcl.Expression, vars map[string]cty.Value) (string, error) {
	val, diags := expr.Value(&hcl.EvalContext{Variables: vars})
	if diags.HasErrors() {
		return "", fmt.Errorf("render message %q: %w", key, diags)
	}
	if val.IsNull() {
		return "", nil
	}
	if !val.IsWhollyKnown() {
		return "", fmt.Errorf("render message %q: value is not known", key)
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("render message %q: %w", key, err)
	}
	if str.IsNull() {
		return "", nil
	}
	return str.AsString(), nil
}
