package theme

import (
	"fmt"
	"strings"
)

// Color is a packed 0xRRGGBBAA color.
type Color uint32

// RGBA returns the color components in the range [0, 1].
func (c Color) RGBA() (r, g, b, a float32) {
	return float32(c>>24&0xFF) / 255, float32(c>>16&0xFF) / 255,
		float32(c>>8&0xFF) / 255, float32(c&0xFF) / 255
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&^0xFF | Color(a)
}

// Scale multiplies the color channels by f, leaving alpha untouched.
// It is used for dim and highlight amounts.
func (c Color) Scale(f float32) Color {
	scale := func(v uint32) uint32 {
		s := float32(v) * f
		if s > 255 {
			return 255
		}
		if s < 0 {
			return 0
		}
		return uint32(s)
	}
	r, g, b := scale(uint32(c>>24&0xFF)), scale(uint32(c>>16&0xFF)), scale(uint32(c>>8&0xFF))
	return Color(r<<24 | g<<16 | b<<8 | uint32(c&0xFF))
}

// String formats the color as #RRGGBBAA.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses #RGB, #RRGGBB and #RRGGBBAA hex colors.
func ParseColor(value string) (Color, error) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		return 0, fmt.Errorf("invalid color %q: missing '#'", value)
	}
	hex := value[1:]

	// Expand shorthand: #RGB → #RRGGBB
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	var r, g, b uint32
	a := uint32(0xFF)
	switch len(hex) {
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", value, err)
		}
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", value, err)
		}
	default:
		return 0, fmt.Errorf("invalid color %q: expected 3, 6 or 8 hex digits", value)
	}
	return Color(r<<24 | g<<16 | b<<8 | a), nil
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(value string) Color {
	c, err := ParseColor(value)
	if err != nil {
		panic(err)
	}
	return c
}
