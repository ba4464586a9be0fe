package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/agiangrant/immersive/retained"
	"github.com/agiangrant/immersive/scene"
)

// Dump implements the 'immersive dump' command
func Dump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	themeFile := fs.String("theme", "", "Theme file (overrides immersive.toml)")
	layout := fs.String("layout", "", "Menu layout: vbox, hbox, wrap or grid")
	hidden := fs.Bool("hidden", false, "Include hidden drawables")
	color := fs.String("color", "", "Color output: auto, always or never")
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
	if *layout != "" {
		config.Menu.Layout = *layout
	}
	if *hidden {
		config.Output.ShowHidden = true
	}
	if *color != "" {
		config.Output.Color = *color
	}

	th, _, err := resolveTheme(dir, config.Theme)
	if err != nil {
		return err
	}
	m, err := buildMenu(config.Menu, th, newLogger(*debug))
	if err != nil {
		return err
	}
	return writeDump(os.Stdout, m, config.Output)
}

func newOutput(w io.Writer, mode string) (*termenv.Output, error) {
	switch mode {
	case "", "auto":
		return termenv.NewOutput(w), nil
	case "always":
		return termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI256)), nil
	case "never":
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii)), nil
	}
	return nil, fmt.Errorf("unknown color mode %q: expected auto, always or never", mode)
}

// writeDump prints the menu's draw list as a table, one row per drawable
// in draw order.
func writeDump(w io.Writer, m *menu, cfg OutputConfig) error {
	out, err := newOutput(w, cfg.Color)
	if err != nil {
		return err
	}

	entries := retained.CollectDrawList(m.root)
	if !cfg.ShowHidden {
		entries = retained.VisibleDrawList(m.root)
	}

	header := fmt.Sprintf("%-7s %-5s %-11s %-6s %-24s %-6s %s", "ORDER", "NODE", "WIDGET", "KIND", "STENCIL", "COLOR", "VISIBLE")
	fmt.Fprintln(out, out.String(header).Bold())

	base := m.root.BaseDepthOffset()
	for _, e := range entries {
		kind := "?"
		if rec, ok := m.rec.Record(e.Handle); ok {
			kind = rec.Kind.String()
		}
		row := fmt.Sprintf("%-7s %-5d %-11s %-6s %-24s %-6s %t",
			fmt.Sprintf("+%d", e.Order-base),
			e.Node.ID(),
			widgetName(e.Node),
			kind,
			formatStencil(e.Stencil),
			onOff(e.ColorWrite),
			e.Visible,
		)
		style := out.String(row)
		switch {
		case !e.Visible:
			style = style.Faint()
		case !e.ColorWrite:
			style = style.Foreground(out.Color("8"))
		case e.Stencil.Compare == scene.CompareAlways:
			style = style.Foreground(out.Color("2"))
		}
		fmt.Fprintln(out, style)
	}

	fmt.Fprintf(out, "\n%d drawables, %d nodes, %d live handles\n", len(entries), m.tree.Len(), m.rec.Live())
	return nil
}

func widgetName(n *retained.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n.Impl()), "*retained.")
}

func formatStencil(fn scene.StencilFunc) string {
	return fmt.Sprintf("%s %d %s", fn.Compare, fn.Ref, fn.Pass)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
