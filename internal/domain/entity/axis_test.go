package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in   string
		want Axis
	}{
		{"h", AxisHorizontal},
		{"Horizontal", AxisHorizontal},
		{" v ", AxisVertical},
		{"VERTICAL", AxisVertical},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAxis(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAxis_Invalid(t *testing.T) {
	_, err := ParseAxis("diagonal")
	assert.True(t, errors.Is(err, ErrInvalidAxis))
}

func TestAxis_Names(t *testing.T) {
	assert.Equal(t, "horizontal", AxisHorizontal.String())
	assert.Equal(t, "vertical", AxisVertical.String())
	assert.Equal(t, "axis(7)", Axis(7).String())
	assert.Equal(t, "H", AxisHorizontal.Short())
	assert.Equal(t, "V", AxisVertical.Short())
}
