package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-gallerygen/pkg/config"
	"github.com/goliatone/go-gallerygen/pkg/site"
)

// Wizard walks the user through the settings stored in gallery.yaml.
type Wizard struct {
	driver    Driver
	renderers []string
}

// WizardOption customises a Wizard.
type WizardOption func(*Wizard)

// WithDriver swaps the terminal driver.
func WithDriver(driver Driver) WizardOption {
	return func(w *Wizard) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// WithRenderers sets the renderer names offered to the user. When empty the
// renderer question is skipped and the default is kept.
func WithRenderers(names ...string) WizardOption {
	return func(w *Wizard) {
		w.renderers = append([]string(nil), names...)
	}
}

// NewWizard builds a Wizard that uses the survey driver unless overridden.
func NewWizard(options ...WizardOption) *Wizard {
	w := &Wizard{}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	if w.driver == nil {
		w.driver = NewSurveyDriver()
	}
	return w
}

// Run asks for each setting, offering the values in defaults as answers.
// The returned config has defaults applied and has been validated.
func (w *Wizard) Run(ctx context.Context, defaults config.Config) (config.Config, error) {
	cfg := defaults
	cfg.ApplyDefaults()

	var err error
	if cfg.Manifest, err = w.driver.Input(ctx, InputConfig{
		Message:   "Manifest",
		Default:   cfg.Manifest,
		Help:      "CSV, YAML or JSON file listing the images, or an http(s) URL.",
		Validator: required("manifest"),
	}); err != nil {
		return config.Config{}, err
	}
	cfg.Manifest = strings.TrimSpace(cfg.Manifest)

	if cfg.OutputDir, err = w.driver.Input(ctx, InputConfig{
		Message: "Output directory",
		Default: cfg.OutputDir,
	}); err != nil {
		return config.Config{}, err
	}

	previousLayout := cfg.Layout
	if cfg.Layout, err = w.askLayout(ctx, cfg.Layout); err != nil {
		return config.Config{}, err
	}

	license := cfg.License
	if license == previousLayout.DefaultLicense() {
		license = cfg.Layout.DefaultLicense()
	}
	if cfg.License, err = w.driver.Input(ctx, InputConfig{
		Message: "License caption",
		Default: license,
		Help:    "Printed after the attribution of every image.",
	}); err != nil {
		return config.Config{}, err
	}

	if len(w.renderers) > 0 {
		idx, err := w.driver.Select(ctx, SelectConfig{
			Message:      "Renderer",
			Options:      w.renderers,
			DefaultIndex: indexOf(w.renderers, cfg.Renderer),
		})
		if err != nil {
			return config.Config{}, err
		}
		if idx >= 0 && idx < len(w.renderers) {
			cfg.Renderer = w.renderers[idx]
		}
	}

	if cfg.Sanitize, err = w.driver.Confirm(ctx, ConfirmConfig{
		Message: "Sanitize manifest values?",
		Default: cfg.Sanitize,
		Help:    "Strips HTML from every field before it is written into the pages.",
	}); err != nil {
		return config.Config{}, err
	}

	if cfg.CheckLinks, err = w.driver.Confirm(ctx, ConfirmConfig{
		Message: "Check links between pages?",
		Default: cfg.CheckLinks,
	}); err != nil {
		return config.Config{}, err
	}

	writeStylesheet, err := w.driver.Confirm(ctx, ConfirmConfig{
		Message: "Write the bundled style.css?",
		Default: !cfg.SkipStylesheet,
	})
	if err != nil {
		return config.Config{}, err
	}
	cfg.SkipStylesheet = !writeStylesheet

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (w *Wizard) askLayout(ctx context.Context, current site.Layout) (site.Layout, error) {
	layouts := site.Layouts()
	options := make([]string, len(layouts))
	defaultIdx := 0
	for i, layout := range layouts {
		options[i] = string(layout)
		if layout == current {
			defaultIdx = i
		}
	}

	idx, err := w.driver.Select(ctx, SelectConfig{
		Message:      "Layout",
		Options:      options,
		DefaultIndex: defaultIdx,
		Help:         "flat: every image on index.html. detail: thumbnails linking to one page per image.",
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(layouts) {
		return "", fmt.Errorf("prompt: layout choice %d out of range", idx)
	}
	return layouts[idx], nil
}

func required(name string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(name + " is required")
		}
		return nil
	}
}
