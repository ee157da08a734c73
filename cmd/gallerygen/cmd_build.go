package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-gallerygen/pkg/config"
	"github.com/goliatone/go-gallerygen/pkg/manifest"
	"github.com/goliatone/go-gallerygen/pkg/orchestrator"
	"github.com/goliatone/go-gallerygen/pkg/output"
	"github.com/goliatone/go-gallerygen/pkg/render"
	"github.com/goliatone/go-gallerygen/pkg/renderers/plain"
	"github.com/goliatone/go-gallerygen/pkg/renderers/vanilla"
	"github.com/goliatone/go-gallerygen/pkg/site"

	internalLoader "github.com/goliatone/go-gallerygen/internal/manifest/loader"
)

const manifestTimeout = 30 * time.Second

type buildFlags struct {
	manifest     string
	format       string
	out          string
	layout       string
	license      string
	renderer     string
	sanitize     bool
	checkLinks   bool
	noStylesheet bool
	templatesDir string
}

func (a *app) buildCommand() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the gallery and write it to the output directory",
		Long: `Loads the config file (when present), applies the command line overrides,
renders every page of the chosen layout and writes them with style.css.

Example:
  gallerygen build --manifest images.csv --layout detail --out public`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, &cfg); err != nil {
				return err
			}
			return a.build(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.manifest, "manifest", "m", "", "manifest file path or http(s) URL")
	f.StringVar(&flags.format, "format", "", "manifest format: csv, yaml or json (default: from extension)")
	f.StringVarP(&flags.out, "out", "o", "", "output directory")
	f.StringVarP(&flags.layout, "layout", "l", "", "page layout: flat or detail")
	f.StringVar(&flags.license, "license", "", "license caption (default depends on layout)")
	f.StringVarP(&flags.renderer, "renderer", "r", "", "renderer: plain or vanilla")
	f.BoolVar(&flags.sanitize, "sanitize", false, "strip HTML from manifest values")
	f.BoolVar(&flags.checkLinks, "check-links", false, "fail when a page links to a missing page or stylesheet")
	f.BoolVar(&flags.noStylesheet, "no-stylesheet", false, "do not write style.css")
	f.StringVar(&flags.templatesDir, "templates", "", "directory of vanilla templates overriding the bundled ones")
	return cmd
}

// apply copies the flags the user set onto cfg.
func (f buildFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	if changed("manifest") {
		cfg.Manifest = f.manifest
	}
	if changed("format") {
		cfg.ManifestFormat = f.format
	}
	if changed("out") {
		cfg.OutputDir = f.out
	}
	if changed("layout") {
		layout, err := site.ParseLayout(f.layout)
		if err != nil {
			return err
		}
		if cfg.Layout != layout && !changed("license") && cfg.License == cfg.Layout.DefaultLicense() {
			cfg.License = ""
		}
		cfg.Layout = layout
	}
	if changed("license") {
		cfg.License = f.license
	}
	if changed("renderer") {
		cfg.Renderer = f.renderer
	}
	if changed("sanitize") {
		cfg.Sanitize = f.sanitize
	}
	if changed("check-links") {
		cfg.CheckLinks = f.checkLinks
	}
	if changed("no-stylesheet") {
		cfg.SkipStylesheet = f.noStylesheet
	}
	if changed("templates") {
		cfg.TemplatesDir = f.templatesDir
	}
	return nil
}

// loadConfig reads the config file. A missing default file is not an error;
// a missing file named with --config is.
func (a *app) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err == nil {
		a.logger.Debug("config loaded", zap.String("path", a.configPath))
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		return config.Config{}, nil
	}
	return config.Config{}, err
}

func (a *app) build(cmd *cobra.Command, cfg config.Config) error {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := manifest.ParseFormat(cfg.ManifestFormat)
	if err != nil {
		return err
	}
	source := manifest.ParseSource(cfg.Manifest)
	if source == nil {
		return fmt.Errorf("invalid manifest location %q", cfg.Manifest)
	}

	loader := internalLoader.New(manifest.NewLoaderOptions(
		manifest.WithHTTPFallback(manifestTimeout),
		manifest.WithFormat(format),
	))

	registry, err := newRegistry(cfg.TemplatesDir)
	if err != nil {
		return err
	}

	gen := orchestrator.New(
		orchestrator.WithLoader(loader),
		orchestrator.WithRegistry(registry),
		orchestrator.WithWriter(output.NewDirWriter(cfg.OutputDir)),
		orchestrator.WithLogger(a.logger),
		orchestrator.WithDefaultRenderer(cfg.Renderer),
	)

	s, err := gen.Build(cmd.Context(), orchestrator.Request{
		Source:   source,
		Layout:   cfg.Layout,
		Renderer: cfg.Renderer,
		RenderOptions: render.RenderOptions{
			License:  cfg.License,
			Sanitize: cfg.Sanitize,
			Theme:    cfg.Theme.RendererConfig(),
		},
		SkipStylesheet: cfg.SkipStylesheet,
		CheckLinks:     cfg.CheckLinks,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Gallery written to %s (%d pages)\n", cfg.OutputDir, len(s.Pages))
	return nil
}

func newRegistry(templatesDir string) (*render.Registry, error) {
	templated, err := vanilla.New(vanilla.WithTemplatesDir(templatesDir))
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	registry.MustRegister(plain.New())
	registry.MustRegister(templated)
	return registry, nil
}
