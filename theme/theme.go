// Package theme holds the named values (colors, corner radius, fonts,
// standard sizes) that GUI nodes read when applying their look.
//
// A Theme is plain data. Nodes keep their own deep copy, so a subtree can
// diverge from a shared theme without mutating it.
package theme

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Size keys understood by Theme.Size in addition to the Sizes table.
const (
	KeyStdButtonSize = "std_button_size"
	KeyCursorSize    = "cursor_size"
	KeyCursorHotSpot = "cursor_hot_spot"
)

// Theme is the set of named values applied to GUI nodes.
type Theme struct {
	Name string `toml:"name" yaml:"name"`
	Font string `toml:"font" yaml:"font"`

	TextColor      Color `toml:"text_color" yaml:"text_color"`
	BackColor      Color `toml:"back_color" yaml:"back_color"`
	TopBackColor   Color `toml:"top_back_color" yaml:"top_back_color"`
	BorderColor    Color `toml:"border_color" yaml:"border_color"`
	HighlightColor Color `toml:"highlight_color" yaml:"highlight_color"`
	IndexTextColor Color `toml:"index_text_color" yaml:"index_text_color"`

	CornerRadius        float32 `toml:"corner_radius" yaml:"corner_radius"`
	ButtonCornerRadius  float32 `toml:"button_corner_radius" yaml:"button_corner_radius"`
	OverlayCornerRadius float32 `toml:"overlay_corner_radius" yaml:"overlay_corner_radius"`
	BorderSize          float32 `toml:"border_size" yaml:"border_size"`

	// Text heights in meters.
	LineHeight float32 `toml:"line_height" yaml:"line_height"`
	H1         float32 `toml:"h1" yaml:"h1"`
	H2         float32 `toml:"h2" yaml:"h2"`
	H3         float32 `toml:"h3" yaml:"h3"`
	H4         float32 `toml:"h4" yaml:"h4"`

	StdButtonSize [2]float32 `toml:"std_button_size" yaml:"std_button_size"`
	CursorSize    [2]float32 `toml:"cursor_size" yaml:"cursor_size"`
	CursorHotSpot [2]float32 `toml:"cursor_hot_spot" yaml:"cursor_hot_spot"`

	// OverlayPercent is the fraction of a node's interior given to overlays.
	OverlayPercent  float32 `toml:"overlay_percent" yaml:"overlay_percent"`
	DimAmount       float32 `toml:"dim_amount" yaml:"dim_amount"`
	HighlightAmount float32 `toml:"highlight_amount" yaml:"highlight_amount"`

	ConstantPanelButtons bool `toml:"constant_panel_buttons" yaml:"constant_panel_buttons"`

	Icons map[string]string     `toml:"icons" yaml:"icons"`
	Sizes map[string][2]float32 `toml:"sizes" yaml:"sizes"`

	// Tooltip is used for tooltips when set.
	Tooltip *Theme `toml:"tooltip,omitempty" yaml:"tooltip,omitempty"`
}

// Dark returns the default dark theme.
func Dark() *Theme {
	return &Theme{
		Name:                "dark",
		Font:                "Arial",
		TextColor:           MustParseColor("#E6E6E6"),
		BackColor:           MustParseColor("#1E1E1EE6"),
		TopBackColor:        MustParseColor("#141414F0"),
		BorderColor:         MustParseColor("#5A5A5A"),
		HighlightColor:      MustParseColor("#3C8CE6"),
		IndexTextColor:      MustParseColor("#A0A0A0"),
		CornerRadius:        0.005,
		ButtonCornerRadius:  0.005,
		OverlayCornerRadius: 0.01,
		BorderSize:          0.002,
		LineHeight:          0.02,
		H1:                  0.04,
		H2:                  0.032,
		H3:                  0.026,
		H4:                  0.022,
		StdButtonSize:       [2]float32{0.12, 0.04},
		CursorSize:          [2]float32{0.02, 0.02},
		CursorHotSpot:       [2]float32{0.5, 0.5},
		OverlayPercent:      0.8,
		DimAmount:           0.5,
		HighlightAmount:     1.3,
		Icons: map[string]string{
			"back":   "icons/back.png",
			"home":   "icons/home.png",
			"cancel": "icons/cancel.png",
			"cursor": "icons/cursor.png",
		},
		Sizes: map[string][2]float32{},
		Tooltip: &Theme{
			Name:           "dark-tooltip",
			Font:           "Arial",
			TextColor:      MustParseColor("#101010"),
			BackColor:      MustParseColor("#F0F0C8"),
			TopBackColor:   MustParseColor("#F0F0C8"),
			BorderColor:    MustParseColor("#101010"),
			CornerRadius:   0.002,
			LineHeight:     0.015,
			OverlayPercent: 1,
		},
	}
}

// Light returns the default light theme.
func Light() *Theme {
	t := Dark()
	t.Name = "light"
	t.TextColor = MustParseColor("#1A1A1A")
	t.BackColor = MustParseColor("#F5F5F5E6")
	t.TopBackColor = MustParseColor("#FFFFFFF0")
	t.BorderColor = MustParseColor("#B4B4B4")
	t.IndexTextColor = MustParseColor("#606060")
	t.DimAmount = 0.7
	return t
}

// Clone returns a deep copy of t.
func (t *Theme) Clone() *Theme {
	if t == nil {
		return nil
	}
	out := &Theme{}
	if err := copier.CopyWithOption(out, t, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, which a Theme to Theme copy cannot hit
		panic(fmt.Sprintf("theme: clone %q: %v", t.Name, err))
	}
	return out
}

// Size looks up a named two-axis size. The built-in keys map to the
// matching fields; anything else is read from Sizes.
func (t *Theme) Size(key string) ([2]float32, bool) {
	switch key {
	case KeyStdButtonSize:
		return t.StdButtonSize, true
	case KeyCursorSize:
		return t.CursorSize, true
	case KeyCursorHotSpot:
		return t.CursorHotSpot, true
	}
	v, ok := t.Sizes[key]
	return v, ok
}

// TooltipTheme returns the tooltip theme, falling back to t.
func (t *Theme) TooltipTheme() *Theme {
	if t.Tooltip != nil {
		return t.Tooltip
	}
	return t
}
