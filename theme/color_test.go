package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"six digits", "#FF8000", 0xFF8000FF, false},
		{"shorthand", "#F80", 0xFF8800FF, false},
		{"with alpha", "#10203040", 0x10203040, false},
		{"lowercase", "#abcdef", 0xABCDEFFF, false},
		{"surrounding space", "  #000000 ", 0x000000FF, false},
		{"missing hash", "FF8000", 0, true},
		{"bad length", "#FF80", 0, true},
		{"not hex", "#GGGGGG", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorText(t *testing.T) {
	c := Color(0x11223344)
	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#11223344", string(text))

	var back Color
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, c, back)
}

func TestColorScale(t *testing.T) {
	c := Color(0x80808080)
	assert.Equal(t, Color(0x40404080), c.Scale(0.5))
	assert.Equal(t, Color(0xFFFFFF80), c.Scale(4))
	assert.Equal(t, Color(0x808080FF), c.WithAlpha(0xFF))

	r, g, b, a := Color(0xFF0000FF).RGBA()
	assert.Equal(t, []float32{1, 0, 0, 1}, []float32{r, g, b, a})
}
