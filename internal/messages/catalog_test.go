package messages

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/guessgame/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseExpr(t *testing.T, src string) hcl.Expression {
	t.Helper()
	expr, diags := hclsyntax.ParseExpression([]byte(src), "test.hcl", hcl.InitialPos)
	require.False(t, diags.HasErrors(), diags.Error())
	return expr
}

func TestRender_Defaults(t *testing.T) {
	t.Parallel()

	c := New(config.Default().Messages, 1, 100)

	testCases := []struct {
		key   config.MessageKey
		guess uint32
		want  string
	}{
		{key: config.MessageStart, want: "Guess the number"},
		{key: config.MessagePrompt, want: "Please input your guess."},
		{key: config.MessageConfirm, guess: 42, want: "You guessed: 42"},
		{key: config.MessageTooSmall, guess: 1, want: "too small"},
		{key: config.MessageTooBig, guess: 99, want: "too big"},
		{key: config.MessageWin, guess: 50, want: "You win!"},
		{key: config.MessageFarewell, guess: 50, want: "Let's play again! See ya!"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(string(tc.key), func(t *testing.T) {
			t.Parallel()

			got, err := c.Render(tc.key, tc.guess)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRender_TemplateVariables(t *testing.T) {
	t.Parallel()

	templates := config.Default().Messages
	templates[config.MessageStart] = parseExpr(t, `"Pick ${min}..${max}"`)
	templates[config.MessageTooBig] = parseExpr(t, `"${guess} > secret"`)
	c := New(templates, 1, 100)

	got, err := c.Render(config.MessageStart, 0)
	require.NoError(t, err)
	assert.Equal(t, "Pick 1..100", got)

	got, err = c.Render(config.MessageTooBig, 9999)
	require.NoError(t, err)
	assert.Equal(t, "9999 > secret", got)
}

func TestRender_NonStringValuesAreConverted(t *testing.T) {
	t.Parallel()

	templates := config.Default().Messages
	templates[config.MessageConfirm] = parseExpr(t, `guess`)
	templates[config.MessageWin] = parseExpr(t, `true`)
	c := New(templates, 1, 100)

	got, err := c.Render(config.MessageConfirm, 7)
	require.NoError(t, err)
	assert.Equal(t, "7", got)

	got, err = c.Render(config.MessageWin, 7)
	require.NoError(t, err)
	assert.Equal(t, "true", got)
}

func TestRender_NullIsEmpty(t *testing.T) {
	t.Parallel()

	templates := config.Default().Messages
	templates[config.MessageFarewell] = parseExpr(t, `null`)

	got, err := New(templates, 1, 100).Render(config.MessageFarewell, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	templates := config.Default().Messages
	templates[config.MessageWin] = parseExpr(t, `["a", "b"]`)
	templates[config.MessagePrompt] = parseExpr(t, `"${guess}"`)
	delete(templates, config.MessageFarewell)
	c := New(templates, 1, 100)

	_, err := c.Render(config.MessageWin, 1)
	assert.ErrorContains(t, err, `render message "win"`)

	// Not validated here, so the missing variable surfaces at render time.
	_, err = c.Render(config.MessagePrompt, 1)
	assert.ErrorContains(t, err, `render message "prompt"`)

	_, err = c.Render(config.MessageFarewell, 1)
	assert.ErrorContains(t, err, `message "farewell" is not defined`)
}
