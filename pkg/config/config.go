// Package config holds the gallery build settings. Settings are read from a
// YAML file and then overridden by command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-gallerygen/pkg/manifest"
	"github.com/goliatone/go-gallerygen/pkg/site"
)

// DefaultFile is the config file name looked up by the CLI.
const DefaultFile = "gallery.yaml"

// Defaults applied by ApplyDefaults.
const (
	DefaultManifest  = "images.csv"
	DefaultOutputDir = "."
	DefaultRenderer  = "vanilla"
)

// ErrManifestRequired is returned by Validate when no manifest is set.
var ErrManifestRequired = errors.New("config: manifest is required")

// Config describes one gallery build.
type Config struct {
	Manifest       string      `yaml:"manifest"`
	ManifestFormat string      `yaml:"manifest_format,omitempty"`
	OutputDir      string      `yaml:"output_dir"`
	Layout         site.Layout `yaml:"layout"`
	License        string      `yaml:"license,omitempty"`
	Renderer       string      `yaml:"renderer"`
	// SkipStylesheet leaves style.css out of the output, for sites that ship
	// their own.
	SkipStylesheet bool `yaml:"skip_stylesheet,omitempty"`
	Sanitize       bool `yaml:"sanitize,omitempty"`
	CheckLinks     bool `yaml:"check_links,omitempty"`
	// TemplatesDir points at a directory laid out like the vanilla template
	// bundle. Templates found there replace the bundled ones.
	TemplatesDir string `yaml:"templates_dir,omitempty"`
	// Theme carries optional CSS variables and template partial overrides for
	// the vanilla renderer.
	Theme Theme `yaml:"theme,omitempty"`
}

// Theme mirrors the subset of go-theme renderer settings a gallery uses.
type Theme struct {
	Name     string            `yaml:"name,omitempty"`
	Variant  string            `yaml:"variant,omitempty"`
	Partials map[string]string `yaml:"partials,omitempty"`
	Tokens   map[string]string `yaml:"tokens,omitempty"`
	CSSVars  map[string]string `yaml:"css_vars,omitempty"`
}

// IsZero reports whether no theme setting is present.
func (t Theme) IsZero() bool {
	return t.Name == "" && t.Variant == "" && len(t.Partials) == 0 && len(t.Tokens) == 0 && len(t.CSSVars) == 0
}

// RendererConfig converts the settings into the go-theme shape renderers
// consume. It returns nil when no theme is configured.
func (t Theme) RendererConfig() *theme.RendererConfig {
	if t.IsZero() {
		return nil
	}
	return &theme.RendererConfig{
		Theme:    t.Name,
		Variant:  t.Variant,
		Partials: copyStringMap(t.Partials),
		Tokens:   copyStringMap(t.Tokens),
		CSSVars:  copyStringMap(t.CSSVars),
	}
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

// Default returns a config with every default applied.
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills empty fields. The license default depends on the
// layout, so the layout is resolved first.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.Manifest) == "" {
		c.Manifest = DefaultManifest
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Layout == "" {
		c.Layout = site.LayoutFlat
	}
	if strings.TrimSpace(c.License) == "" {
		c.License = c.Layout.DefaultLicense()
	}
	if strings.TrimSpace(c.Renderer) == "" {
		c.Renderer = DefaultRenderer
	}
}

// Validate checks the fields that cannot be defaulted.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Manifest) == "" {
		return ErrManifestRequired
	}
	if _, err := site.ParseLayout(string(c.Layout)); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := manifest.ParseFormat(c.ManifestFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load reads a YAML config file. Defaults are not applied.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes YAML config content. source is only used in error messages.
func Parse(data []byte, source string) (Config, error) {
	var cfg Config
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", source, err)
	}
	if cfg.Layout != "" {
		layout, err := site.ParseLayout(string(cfg.Layout))
		if err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", source, err)
		}
		cfg.Layout = layout
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
