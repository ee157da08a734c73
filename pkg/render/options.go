package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
)

// RenderOptions describe per-page settings renderers apply on top of the
// record fields.
type RenderOptions struct {
	// License is the caption appended to every full fragment. Empty falls
	// back to gallery.LicenseCCBY.
	License string
	// ImagePrefix is prepended to the image src of full fragments. Detail
	// pages use "../" so the src resolves from the subpage directory.
	ImagePrefix string
	// Sanitize strips markup from field values before substitution. Off by
	// default: galleries render fields verbatim.
	Sanitize bool
	// Theme optionally carries a resolved go-theme configuration. Renderers
	// that support theming use it to resolve the stylesheet URL, inline CSS
	// variables and template partial overrides.
	Theme *theme.RendererConfig
}

// LicenseOrDefault returns the configured license caption.
func (o RenderOptions) LicenseOrDefault() string {
	if o.License == "" {
		return gallery.LicenseCCBY
	}
	return o.License
}

// Template returns the gallery template matching the options.
func (o RenderOptions) Template() gallery.Template {
	return gallery.NewTemplate(o.LicenseOrDefault(), gallery.WithImagePrefix(o.ImagePrefix))
}
