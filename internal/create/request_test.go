package create_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/create-component/internal/create"
)

func TestNewRequest(t *testing.T) {
	t.Parallel()

	req := create.NewRequest("  SquareButton ", true, false)

	assert.Equal(t, "SquareButton", req.Name)
	assert.Equal(t, create.StyleFunctional, req.Style)
	assert.False(t, req.IncludeStyles)
	require.NoError(t, req.Validate())
}

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "name given", input: "Avatar"},
		{name: "empty", input: "", wantErr: create.ErrMissingName},
		{name: "blank", input: " \t", wantErr: create.ErrMissingName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := create.NewRequest(tt.input, false, true).Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, create.StyleClass, create.StyleFor(false))
	assert.Equal(t, create.StyleFunctional, create.StyleFor(true))
	assert.Equal(t, "class", create.StyleClass.String())
	assert.Equal(t, "functional", create.StyleFunctional.String())
}
