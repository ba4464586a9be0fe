package theme

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a theme file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unsupported theme file %s: expected .toml, .yaml or .yml", path)
}

// Load reads a theme file. Values missing from the file keep the Dark
// defaults.
func Load(path string) (*Theme, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	t, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return t, nil
}

// Decode decodes a theme on top of the Dark defaults.
func Decode(data []byte, format Format) (*Theme, error) {
	t := Dark()
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, t); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, t); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown theme format %d", format)
	}
	if t.OverlayPercent <= 0 || t.OverlayPercent > 1 {
		return nil, fmt.Errorf("overlay_percent %v out of range (0, 1]", t.OverlayPercent)
	}
	return t, nil
}

// Encode writes t in the given format.
func Encode(t *Theme, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(t); err != nil {
			return nil, fmt.Errorf("failed to marshal theme: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return nil, fmt.Errorf("failed to marshal theme: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown theme format %d", format)
	}
	return buf.Bytes(), nil
}

// Save writes t to path, picking the format from the extension.
func Save(t *Theme, path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(t, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
