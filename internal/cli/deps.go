// Package cli provides the Cobra command tree for skelgen. This file holds
// the Dependencies struct that wires configuration, logging and the
// terminal UI together for every command.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/modu-ai/skelgen/internal/config"
	"github.com/modu-ai/skelgen/internal/layout"
	"github.com/modu-ai/skelgen/internal/registry"
	"github.com/modu-ai/skelgen/internal/ui"
)

// Dependencies holds the services shared by commands.
type Dependencies struct {
	Config   *config.Config
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Logger   *slog.Logger
}

// newDependencies builds the dependencies for one invocation. Log output
// goes to logOut at the configured level and becomes the slog default.
func newDependencies(cfg *config.Config, logOut io.Writer) *Dependencies {
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	hm := ui.NewHeadlessManager()
	theme := ui.NewTheme(ui.ThemeConfig{NoColor: cfg.NoColor || hm.IsHeadless()})

	return &Dependencies{
		Config:   cfg,
		Theme:    theme,
		Headless: hm,
		Logger:   logger,
	}
}

// loadLayout returns the descriptor at path, or the built-in one when path
// is empty.
func loadLayout(path string) (layout.DirectoryGroup, error) {
	if path == "" {
		return layout.Default(), nil
	}
	root, err := layout.Load(path)
	if err != nil {
		return layout.DirectoryGroup{}, fmt.Errorf("load layout: %w", err)
	}
	return root, nil
}

// loadTemplates returns the built-in registry, overlaid by the top-level
// files of dir when dir is set.
func loadTemplates(dir string) (*registry.Registry, error) {
	reg, err := registry.Default()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return reg, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("templates directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates directory: %s is not a directory", dir)
	}
	overlay, err := registry.FromFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("load templates from %s: %w", dir, err)
	}
	slog.Debug("template overlay loaded", "dir", dir, "count", overlay.Len())
	return reg.Merge(overlay), nil
}
