package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/agiangrant/immersive/retained"
	"github.com/agiangrant/immersive/scene"
	"github.com/agiangrant/immersive/theme"
)

var errUnknownLayout = errors.New("unknown layout")

// menu is the demo GUI tree described by the [menu] section, drawn into
// a recorder instead of a live scene.
type menu struct {
	rec   *scene.Recorder
	tree  *retained.Tree
	root  *retained.Panel
	title *retained.Text
	list  *retained.Node
	items []*retained.Panel
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolveTheme loads the theme named by the [theme] section. A missing
// theme file falls back to the built-in base theme.
func resolveTheme(dir string, cfg ThemeConfig) (*theme.Theme, string, error) {
	if cfg.File != "" {
		path := cfg.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if _, err := os.Stat(path); err == nil {
			th, err := theme.Load(path)
			return th, path, err
		}
	}
	switch cfg.Base {
	case "", "dark":
		return theme.Dark(), "", nil
	case "light":
		return theme.Light(), "", nil
	}
	return nil, "", fmt.Errorf("unknown base theme %q: expected dark or light", cfg.Base)
}

func menuLayout(cfg MenuConfig) (retained.Layout, error) {
	switch cfg.Layout {
	case "vbox":
		return &retained.VBox{VAlign: retained.AlignStart, HAlign: retained.AlignCenter}, nil
	case "hbox":
		return &retained.HBox{HAlign: retained.AlignCenter, VAlign: retained.AlignCenter}, nil
	case "wrap":
		return &retained.ListWrap{
			HAlign:          retained.AlignJustify,
			LastLineAlign:   retained.AlignStart,
			SingleLineAlign: retained.AlignCenter,
			UnifySpacing:    true,
		}, nil
	case "grid":
		return &retained.ColGrid{Columns: cfg.Columns, ColumnPadding: 0.01, RowPadding: 0.01}, nil
	}
	return nil, fmt.Errorf("%w %q: expected vbox, hbox, wrap or grid", errUnknownLayout, cfg.Layout)
}

// buildMenu lays out a title above a list of selectable items.
func buildMenu(cfg MenuConfig, th *theme.Theme, logger *slog.Logger) (*menu, error) {
	layout, err := menuLayout(cfg)
	if err != nil {
		return nil, err
	}

	m := &menu{rec: scene.NewRecorder()}
	ctx := scene.NewContext(m.rec, scene.WithLogger(logger))
	m.tree = retained.NewTree(ctx)

	err = ctx.Batch(func() {
		m.root = m.tree.NewPanel(retained.Config{
			Size:    cfg.Size,
			Padding: retained.Uniform(0.01),
			Theme:   th,
			Layout:  &retained.VBox{VAlign: retained.AlignStart, HAlign: retained.AlignCenter},
		})

		m.title = m.tree.NewText(retained.TextConfig{
			Config: retained.Config{
				Margin:   retained.Sides{0, 0, 0.01, 0},
				SizeMode: [2]retained.SizeMode{retained.SizeMeters, retained.SizeMeters},
			},
			Text:  cfg.Title,
			Level: 1,
		})
		m.list = m.tree.NewNode(retained.Config{
			SizeMode: [2]retained.SizeMode{retained.SizePercentParent, retained.SizePercentRemaining},
			Layout:   layout,
		})
		m.addChild(m.root.Node, m.title)
		m.addChild(m.root.Node, m.list)

		for _, label := range cfg.Items {
			item := m.tree.NewPanel(retained.Config{
				Size:    cfg.ItemSize,
				Padding: retained.Uniform(0.004),
				Margin:  retained.Uniform(0.005),
				Layout:  &retained.Overlapping{HAlign: retained.AlignCenter, VAlign: retained.AlignCenter},
			})
			item.SetSelectable(true)
			m.addChild(item.Node, m.tree.NewText(retained.TextConfig{Text: label}))
			m.addChild(m.list, item)
			m.items = append(m.items, item)
		}

		if cfg.Tooltip != "" && len(m.items) > 0 {
			tt := m.tree.NewTooltip(cfg.Tooltip)
			if err := m.items[0].SetTooltip(tt); err != nil {
				m.tree.Context().Logger().Error("set tooltip failed", "err", err)
			} else {
				tt.Show()
			}
		}
		if cfg.Status != "" {
			m.list.ShowStatus(cfg.Status)
		}

		m.root.RefreshLayout(true)
		m.root.RefreshDepth()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build menu: %w", err)
	}
	return m, nil
}

func (m *menu) addChild(parent *retained.Node, child retained.Widget) {
	if err := parent.AddChild(child); err != nil {
		m.tree.Context().Logger().Error("add child failed", "parent", parent.ID(), "err", err)
	}
}

// retheme applies th to the whole menu.
func (m *menu) retheme(th *theme.Theme) error {
	return m.tree.Context().Batch(func() {
		m.root.SetTheme(th)
		m.root.RefreshLayout(true)
	})
}
