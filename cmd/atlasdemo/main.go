// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command atlasdemo rasterizes a string and the built-in icons into a
// texture atlas and dumps the resulting pages as PNG images.
//
// It is a smoke test for the cache pipeline: font resolution, glyph
// rasterization, shelf packing and page uploads, all on the software
// backend so the pages can be inspected without a GPU.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/textatlas"
	"github.com/gogpu/textatlas/gpu"
	"github.com/gogpu/textatlas/icon"
)

// demoConfig mirrors the TOML config file and the command flags.
type demoConfig struct {
	Font     string   `toml:"font"`
	FontPath string   `toml:"font_path"`
	Size     float64  `toml:"size"`
	PageSize int      `toml:"page_size"`
	Text     string   `toml:"text"`
	Icons    []string `toml:"icons"`
	OutDir   string   `toml:"out_dir"`
}

func defaultDemoConfig() demoConfig {
	return demoConfig{
		Font:     "DejaVu Sans Mono",
		Size:     24,
		PageSize: 256,
		Text:     "Sphinx of black quartz, judge my vow",
		OutDir:   ".",
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := defaultDemoConfig()
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:          "atlasdemo",
		Short:        "Render text and icons into atlas pages and dump them as PNGs",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			textatlas.SetLogger(slog.New(logger))

			if configPath != "" {
				if err := loadConfig(configPath, &cfg, cmd); err != nil {
					return err
				}
			}
			return run(cfg, logger)
		},
	}

	root.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file (flags override it)")
	root.Flags().StringVar(&cfg.Font, "font", cfg.Font, "font family to resolve against the system fonts")
	root.Flags().StringVar(&cfg.FontPath, "font-path", cfg.FontPath, "font file path (overrides --font)")
	root.Flags().Float64Var(&cfg.Size, "size", cfg.Size, "font size in pixels")
	root.Flags().IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "atlas page dimension in pixels")
	root.Flags().StringVar(&cfg.Text, "text", cfg.Text, "string to rasterize")
	root.Flags().StringSliceVar(&cfg.Icons, "icons", nil, "icon names to rasterize (default: all)")
	root.Flags().StringVarP(&cfg.OutDir, "out-dir", "o", cfg.OutDir, "directory for the page PNGs")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

// loadConfig fills cfg from a TOML file, keeping any value that was
// set explicitly on the command line.
func loadConfig(path string, cfg *demoConfig, cmd *cobra.Command) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	fileCfg := defaultDemoConfig()
	if err := toml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if !cmd.Flags().Changed("font") {
		cfg.Font = fileCfg.Font
	}
	if !cmd.Flags().Changed("font-path") {
		cfg.FontPath = fileCfg.FontPath
	}
	if !cmd.Flags().Changed("size") {
		cfg.Size = fileCfg.Size
	}
	if !cmd.Flags().Changed("page-size") {
		cfg.PageSize = fileCfg.PageSize
	}
	if !cmd.Flags().Changed("text") {
		cfg.Text = fileCfg.Text
	}
	if !cmd.Flags().Changed("icons") {
		cfg.Icons = fileCfg.Icons
	}
	if !cmd.Flags().Changed("out-dir") {
		cfg.OutDir = fileCfg.OutDir
	}
	return nil
}

func run(cfg demoConfig, logger *charmlog.Logger) error {
	backend := gpu.NewSoftwareBackend()

	opts := []textatlas.Option{
		textatlas.WithBackend(backend),
		textatlas.WithPageSize(cfg.PageSize),
	}
	if cfg.FontPath != "" {
		opts = append(opts, textatlas.WithFontPath(cfg.FontPath))
	}

	ra, err := textatlas.New(cfg.Font, cfg.Size, opts...)
	if err != nil {
		return err
	}
	defer ra.Close()

	it := ra.RasterizeString(cfg.Text)
	var glyphs, penX int
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		glyphs++
		penX += p.AdvanceX
	}
	if err := it.Err(); err != nil {
		logger.Warn("string truncated", "rasterized", glyphs, "err", err)
	}
	logger.Info("rasterized string", "glyphs", glyphs, "width_px", penX)

	ids := icon.All()
	if len(cfg.Icons) > 0 {
		ids = ids[:0]
		for _, name := range cfg.Icons {
			id, err := icon.Parse(name)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		if _, err := ra.RasterizeIcon(id); err != nil {
			return fmt.Errorf("icon %s: %w", id, err)
		}
	}
	logger.Info("rasterized icons", "count", len(ids))

	a := ra.Atlas()
	logger.Info("cache stats",
		"symbols", ra.CacheLen(),
		"pages", len(a.Pages()),
		"utilization", fmt.Sprintf("%.1f%%", a.Utilization()*100))

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}
	for i, page := range a.Pages() {
		img := backend.PageImage(page)
		if img == nil {
			continue
		}
		name := filepath.Join(cfg.OutDir, fmt.Sprintf("page_%d.png", i))
		if err := writePNG(name, img); err != nil {
			return err
		}
		logger.Info("wrote page", "file", name, "size", cfg.PageSize)
	}
	return nil
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
