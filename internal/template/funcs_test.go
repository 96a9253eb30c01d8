package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tmpl "github.com/donaldgifford/create-component/internal/template"
)

func TestFuncMap_Identifier(t *testing.T) {
	t.Parallel()

	r := tmpl.NewRenderer()

	tests := []struct {
		input    string
		expected string
	}{
		{"square-button", "SquareButton"},
		{"square_button", "SquareButton"},
		{"square button", "SquareButton"},
		{"avatar", "Avatar"},
	}

	for _, tt := range tests {
		result, err := r.RenderString(`{{ camelcase "`+tt.input+`" }}`, nil)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, result, "camelcase(%q)", tt.input)
	}
}

func TestFuncMap_SprigCase(t *testing.T) {
	t.Parallel()

	r := tmpl.NewRenderer()

	result, err := r.RenderString(`{{ kebabcase .Name }}|{{ snakecase .Name }}`, map[string]any{"Name": "SquareButton"})
	require.NoError(t, err)
	assert.Equal(t, "square-button|square_button", result)
}

func TestFuncMap_Sprig(t *testing.T) {
	t.Parallel()

	r := tmpl.NewRenderer()

	result, err := r.RenderString(`{{ "a\nb" | indent 2 }}|{{ upper "x" }}|{{ "" | default "fallback" }}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "  a\n  b|X|fallback", result)
}
