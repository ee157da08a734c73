package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-gallerygen/pkg/config"
	"github.com/goliatone/go-gallerygen/pkg/gallery"
	"github.com/goliatone/go-gallerygen/pkg/site"
)

type stubDriver struct {
	inputs        []string
	selectIdx     []int
	confirm       []bool
	infoMessages  []string
	inputPos      int
	selectPos     int
	confirmPos    int
	inputDefaults []string
	selects       []SelectConfig
	failInput     error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.failInput != nil {
		return "", s.failInput
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	s.inputDefaults = append(s.inputDefaults, cfg.Default)
	val := s.inputs[s.inputPos]
	s.inputPos++
	if val == "" {
		val = cfg.Default
	}
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selects = append(s.selects, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestWizard_CollectsAnswers(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"photos.yaml", "public", "All rights reserved"},
		selectIdx: []int{1, 0},
		confirm:   []bool{true, true, false},
	}
	wizard := NewWizard(WithDriver(driver), WithRenderers("plain", "vanilla"))

	got, err := wizard.Run(context.Background(), config.Config{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := config.Config{
		Manifest:       "photos.yaml",
		OutputDir:      "public",
		Layout:         site.LayoutDetail,
		License:        "All rights reserved",
		Renderer:       "plain",
		Sanitize:       true,
		CheckLinks:     true,
		SkipStylesheet: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestWizard_LicenseDefaultFollowsLayout(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", "", ""},
		selectIdx: []int{1},
		confirm:   []bool{false, false, true},
	}
	wizard := NewWizard(WithDriver(driver))

	got, err := wizard.Run(context.Background(), config.Config{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if got.License != gallery.LicenseCC0 {
		t.Fatalf("expected detail license %q, got %q", gallery.LicenseCC0, got.License)
	}
	if got.Manifest != config.DefaultManifest {
		t.Fatalf("expected default manifest, got %q", got.Manifest)
	}
	if got.Renderer != config.DefaultRenderer {
		t.Fatalf("expected default renderer, got %q", got.Renderer)
	}
	if len(driver.selects) != 1 {
		t.Fatalf("renderer question should be skipped without renderer names")
	}
}

func TestWizard_KeepsCustomLicenseAcrossLayouts(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", "", ""},
		selectIdx: []int{1},
		confirm:   []bool{false, false, true},
	}
	wizard := NewWizard(WithDriver(driver))

	got, err := wizard.Run(context.Background(), config.Config{License: "CC BY-SA 4.0"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got.License != "CC BY-SA 4.0" {
		t.Fatalf("expected custom license to survive, got %q", got.License)
	}
}

func TestWizard_OffersExistingValues(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", "", ""},
		selectIdx: []int{1, 1},
		confirm:   []bool{false, false, true},
	}
	wizard := NewWizard(WithDriver(driver), WithRenderers("plain", "vanilla"))

	defaults := config.Config{Manifest: "shots.csv", OutputDir: "dist", Layout: site.LayoutDetail, Renderer: "vanilla"}
	if _, err := wizard.Run(context.Background(), defaults); err != nil {
		t.Fatalf("run: %v", err)
	}

	wantDefaults := []string{"shots.csv", "dist", gallery.LicenseCC0}
	if diff := cmp.Diff(wantDefaults, driver.inputDefaults); diff != "" {
		t.Fatalf("input defaults mismatch (-want +got):\n%s", diff)
	}
	if driver.selects[0].DefaultIndex != 1 || driver.selects[1].DefaultIndex != 1 {
		t.Fatalf("expected current layout and renderer preselected, got %+v", driver.selects)
	}
}

func TestWizard_PropagatesAbort(t *testing.T) {
	driver := &stubDriver{failInput: ErrAborted}
	wizard := NewWizard(WithDriver(driver))

	if _, err := wizard.Run(context.Background(), config.Config{}); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestWizard_RejectsOutOfRangeLayout(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", ""},
		selectIdx: []int{7},
	}
	wizard := NewWizard(WithDriver(driver))

	if _, err := wizard.Run(context.Background(), config.Config{}); err == nil {
		t.Fatalf("expected error for unknown layout choice")
	}
}

func TestRequiredValidator(t *testing.T) {
	validate := required("manifest")
	if err := validate("  "); err == nil {
		t.Fatalf("expected blank value to be rejected")
	}
	if err := validate("images.csv"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
