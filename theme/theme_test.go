package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsDeep(t *testing.T) {
	orig := Dark()
	orig.Sizes["slider"] = [2]float32{0.3, 0.02}

	c := orig.Clone()
	require.NotSame(t, orig, c)
	assert.Equal(t, orig.Name, c.Name)
	assert.Equal(t, orig.BackColor, c.BackColor)
	assert.Equal(t, orig.StdButtonSize, c.StdButtonSize)
	assert.Equal(t, orig.Sizes["slider"], c.Sizes["slider"])
	require.NotNil(t, c.Tooltip)
	assert.NotSame(t, orig.Tooltip, c.Tooltip)
	assert.Equal(t, orig.Tooltip.Name, c.Tooltip.Name)

	c.Sizes["slider"] = [2]float32{1, 1}
	c.Icons["back"] = "other.png"
	c.Tooltip.LineHeight = 1
	c.CornerRadius = 1

	assert.Equal(t, [2]float32{0.3, 0.02}, orig.Sizes["slider"])
	assert.Equal(t, "icons/back.png", orig.Icons["back"])
	assert.NotEqual(t, float32(1), orig.Tooltip.LineHeight)
	assert.NotEqual(t, float32(1), orig.CornerRadius)
}

func TestCloneNil(t *testing.T) {
	var th *Theme
	assert.Nil(t, th.Clone())
}

func TestSize(t *testing.T) {
	th := Dark()
	th.Sizes["card"] = [2]float32{0.2, 0.3}

	tests := []struct {
		key  string
		want [2]float32
		ok   bool
	}{
		{KeyStdButtonSize, th.StdButtonSize, true},
		{KeyCursorSize, th.CursorSize, true},
		{KeyCursorHotSpot, th.CursorHotSpot, true},
		{"card", [2]float32{0.2, 0.3}, true},
		{"missing", [2]float32{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := th.Size(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTooltipTheme(t *testing.T) {
	th := Dark()
	assert.Same(t, th.Tooltip, th.TooltipTheme())

	th.Tooltip = nil
	assert.Same(t, th, th.TooltipTheme())
}

func TestLightDiffersFromDark(t *testing.T) {
	assert.Equal(t, "light", Light().Name)
	assert.NotEqual(t, Dark().BackColor, Light().BackColor)
}
