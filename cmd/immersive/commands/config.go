package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the project file name.
const ConfigFile = "immersive.toml"

// ProjectConfig represents the immersive.toml configuration file
type ProjectConfig struct {
	Theme  ThemeConfig  `toml:"theme"`
	Menu   MenuConfig   `toml:"menu"`
	Output OutputConfig `toml:"output"`
}

type ThemeConfig struct {
	// Theme file path, relative to the project root. Empty means the
	// built-in theme named by Base.
	File string `toml:"file"`
	// Built-in theme: "dark" or "light"
	Base string `toml:"base"`
}

// MenuConfig describes the demo menu built by dump and watch
type MenuConfig struct {
	Title string `toml:"title"`
	// Layout of the items: "vbox", "hbox", "wrap" or "grid"
	Layout string `toml:"layout"`
	// Columns for the grid layout
	Columns  int        `toml:"columns"`
	Size     [2]float32 `toml:"size"`
	ItemSize [2]float32 `toml:"item_size"`
	Items    []string   `toml:"items"`
	// Tooltip shown on the first item
	Tooltip string `toml:"tooltip"`
	// Status message shown as an overlay over the items
	Status string `toml:"status"`
}

type OutputConfig struct {
	// Color mode: "auto", "always" or "never"
	Color string `toml:"color"`
	// Include hidden drawables in the dump
	ShowHidden bool `toml:"show_hidden"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Theme: ThemeConfig{
			File: "theme.toml",
			Base: "dark",
		},
		Menu: MenuConfig{
			Title:    "Main Menu",
			Layout:   "vbox",
			Columns:  2,
			Size:     [2]float32{0.6, 0.4},
			ItemSize: [2]float32{0.2, 0.05},
			Items:    []string{"Start", "Settings", "Quit"},
			Tooltip:  "Begin a new session",
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// LoadConfig loads the project configuration from dir/immersive.toml.
// If the file doesn't exist, returns default config
func LoadConfig(dir string) (ProjectConfig, error) {
	config := DefaultConfig()

	configPath := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	// Apply defaults for empty values
	def := DefaultConfig()
	if config.Theme.Base == "" {
		config.Theme.Base = def.Theme.Base
	}
	if config.Menu.Layout == "" {
		config.Menu.Layout = def.Menu.Layout
	}
	if config.Menu.Columns <= 0 {
		config.Menu.Columns = def.Menu.Columns
	}
	if config.Menu.Size == ([2]float32{}) {
		config.Menu.Size = def.Menu.Size
	}
	if config.Menu.ItemSize == ([2]float32{}) {
		config.Menu.ItemSize = def.Menu.ItemSize
	}
	if config.Output.Color == "" {
		config.Output.Color = def.Output.Color
	}

	return config, nil
}

// SaveConfig saves the configuration to dir/immersive.toml
func SaveConfig(dir string, config ProjectConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(dir, ConfigFile)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	return nil
}

// FindProjectRoot walks up from dir looking for immersive.toml or go.mod
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFile)); err == nil {
			return dir, nil
		}
		// Check for go.mod as fallback
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", fmt.Errorf("not in an immersive project (no %s or go.mod found)", ConfigFile)
		}
		dir = parent
	}
}

// projectDir resolves the project root from the working directory.
// Outside a project the working directory itself is used.
func projectDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if root, err := FindProjectRoot(cwd); err == nil {
		return root, nil
	}
	return cwd, nil
}
