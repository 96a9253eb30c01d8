package compat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/create-component/internal/compat"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		reactRange string
		functional bool
		want       int
	}{
		{name: "empty range", reactRange: "", want: 0},
		{name: "react 18 caret", reactRange: "^18.2.0", functional: true, want: 0},
		{name: "react 17 tilde", reactRange: "~17.0.2", want: 0},
		{name: "react 19 class", reactRange: "^19.0.0", want: 1},
		{name: "react 19 functional", reactRange: "^19.1.0", functional: true, want: 2},
		{name: "open lower bound", reactRange: ">=16.8", functional: true, want: 2},
		{name: "exact pin", reactRange: "19.1.3", want: 1},
		{name: "either major", reactRange: "^18.0.0 || ^19.0.0", want: 1},
		{name: "bounded below 19", reactRange: ">=16 <19", functional: true, want: 0},
		{name: "wildcard", reactRange: "*", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			warnings, err := compat.Check(tt.reactRange, tt.functional)
			require.NoError(t, err)
			assert.Len(t, warnings, tt.want)
		})
	}
}

func TestCheck_WarningText(t *testing.T) {
	t.Parallel()

	warnings, err := compat.Check("^19.0.0", true)
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "propTypes")
	assert.Contains(t, warnings[1], "defaultProps")
}

func TestCheck_UnparseableRange(t *testing.T) {
	t.Parallel()

	_, err := compat.Check("workspace:*", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing react range")
}
