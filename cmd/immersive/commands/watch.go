package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/agiangrant/immersive/theme"
)

// Watch implements the 'immersive watch' command: it dumps the demo menu,
// then re-themes and dumps it again each time the theme file changes.
func Watch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	themeFile := fs.String("theme", "", "Theme file (overrides immersive.toml)")
	debug := fs.Bool("debug", false, "Log layout and depth passes to stderr")
	fs.Parse(args)

	dir, err := projectDir()
	if err != nil {
		return err
	}
	config, err := LoadConfig(dir)
	if err != nil {
		return err
	}
	if *themeFile != "" {
		config.Theme.File = *themeFile
	}

	th, path, err := resolveTheme(dir, config.Theme)
	if err != nil {
		return err
	}
	if path == "" {
		return fmt.Errorf("no theme file to watch (run 'immersive init' or pass --theme)")
	}

	logger := newLogger(*debug)
	m, err := buildMenu(config.Menu, th, logger)
	if err != nil {
		return err
	}
	if err := writeDump(os.Stdout, m, config.Output); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("\nWatching %s (Ctrl+C to stop)\n", path)
	return theme.Watch(ctx, path, func(th *theme.Theme) {
		if err := m.retheme(th); err != nil {
			logger.Error("retheme failed", "err", err)
			return
		}
		fmt.Printf("\n%s changed\n\n", path)
		if err := writeDump(os.Stdout, m, config.Output); err != nil {
			logger.Error("dump failed", "err", err)
		}
	}, func(err error) {
		logger.Warn("theme reload failed", "path", path, "err", err)
	})
}
