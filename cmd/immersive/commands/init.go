package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agiangrant/immersive/theme"
)

// Init implements the 'immersive init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	title := fs.String("title", "", "Menu title (defaults to the directory name)")
	light := fs.Bool("light", false, "Start from the light theme")
	force := fs.Bool("force", false, "Overwrite existing files")
	fs.Parse(args)

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	return initProject(dir, *title, *light, *force)
}

func initProject(dir, title string, light, force bool) error {
	if title == "" {
		title = filepath.Base(dir)
	}

	if _, err := os.Stat(filepath.Join(dir, ConfigFile)); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", ConfigFile)
	}

	fmt.Printf("Initializing immersive project: %s\n", title)

	config := DefaultConfig()
	config.Menu.Title = title
	base := theme.Dark()
	if light {
		config.Theme.Base = "light"
		base = theme.Light()
	}

	if err := SaveConfig(dir, config); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", ConfigFile)

	// Create theme.toml if it doesn't exist
	themePath := filepath.Join(dir, config.Theme.File)
	if _, err := os.Stat(themePath); os.IsNotExist(err) || force {
		if err := theme.Save(base, themePath); err != nil {
			return err
		}
		fmt.Printf("  ✓ Created %s\n", config.Theme.File)
	}

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  immersive dump     Print the demo menu's draw list")
	fmt.Println("  immersive watch    Re-dump whenever the theme changes")
	return nil
}
