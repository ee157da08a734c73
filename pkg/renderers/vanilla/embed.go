package vanilla

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// Template names inside TemplatesFS. Theme partials can replace each one by
// mapping the matching PartialKey to another template path.
const (
	ImageTemplate      = "templates/image.tmpl"
	ThumbTemplate      = "templates/thumb.tmpl"
	StylesheetTemplate = "templates/stylesheet.tmpl"
)

// Theme partial keys understood by the renderer.
const (
	PartialImage      = "gallery.image"
	PartialThumb      = "gallery.thumb"
	PartialStylesheet = "gallery.stylesheet"
)

// TokenStylesheetURL is the theme token that replaces the relative stylesheet
// href, typically with an absolute CDN URL.
const TokenStylesheetURL = "gallery.stylesheet-url"

// TemplatesFS exposes the embedded template bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded stylesheet so the generator can copy it next
// to the generated pages.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

// DefaultStylesheet returns the bundled style.css content.
func DefaultStylesheet() []byte {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+gallery.StylesheetName)
	if err != nil {
		return nil
	}
	return data
}
