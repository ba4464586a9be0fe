package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agiangrant/immersive/theme"
)

// Theme implements the 'immersive theme' command: it loads a theme file,
// or the project's theme, and prints it in the requested format.
func Theme(args []string) error {
	fs := flag.NewFlagSet("theme", flag.ExitOnError)
	format := fs.String("format", "toml", "Output format: toml or yaml")
	check := fs.Bool("check", false, "Only validate the theme")
	fs.Parse(args)

	dir, err := projectDir()
	if err != nil {
		return err
	}
	config, err := LoadConfig(dir)
	if err != nil {
		return err
	}
	if fs.NArg() > 0 {
		config.Theme.File = fs.Arg(0)
	}

	th, path, err := resolveTheme(dir, config.Theme)
	if err != nil {
		return err
	}
	if *check {
		if path == "" {
			path = "built-in " + th.Name
		}
		fmt.Printf("  ✓ %s is valid\n", path)
		return nil
	}
	return writeTheme(os.Stdout, th, *format)
}

func writeTheme(w io.Writer, th *theme.Theme, format string) error {
	var f theme.Format
	switch format {
	case "toml":
		f = theme.FormatTOML
	case "yaml", "yml":
		f = theme.FormatYAML
	default:
		return fmt.Errorf("unknown format %q: expected toml or yaml", format)
	}
	data, err := theme.Encode(th, f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
