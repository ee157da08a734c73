package gallery

import "fmt"

// License captions observed in published galleries.
const (
	LicenseCC0  = "CC0 Public Domain"
	LicenseCCBY = "CC BY 0.0"
)

// StylesheetName is the stylesheet every generated page links to.
const StylesheetName = "style.css"

const (
	imageFormat      = "<img src='%s%s'><p><a href='%s'>Image</a> by <a href='%s'>%s</a>, %s<br>"
	thumbFormat      = "<a href='%s'><img class='thumb' src='%s'></a>"
	stylesheetFormat = "<link rel='stylesheet' type='text/css' href='%s%s'>"
)

// Template renders records with a license caption fixed at construction. It
// is a plain value and safe to share between goroutines.
type Template struct {
	license     string
	imagePrefix string
}

// TemplateOption customises NewTemplate.
type TemplateOption func(*Template)

// WithImagePrefix prepends prefix to the image src of full fragments. Detail
// pages live one directory below the index and use "../".
func WithImagePrefix(prefix string) TemplateOption {
	return func(t *Template) {
		t.imagePrefix = prefix
	}
}

// NewTemplate returns a template that captions every image with license.
func NewTemplate(license string, options ...TemplateOption) Template {
	t := Template{license: license}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&t)
	}
	return t
}

func (t Template) License() string     { return t.license }
func (t Template) ImagePrefix() string { return t.imagePrefix }

// Render returns the full fragment for img. Field values are substituted
// verbatim.
func (t Template) Render(img Image) string {
	return fmt.Sprintf(imageFormat,
		t.imagePrefix,
		img.imagePath.String(),
		img.sourceURL.String(),
		img.attributionURL.String(),
		img.attributionName.String(),
		t.license,
	)
}

// RenderThumb returns the thumbnail link pointing at the record's detail page.
func (t Template) RenderThumb(img Image) string {
	return fmt.Sprintf(thumbFormat, img.DetailPagePath(), img.imagePath.String())
}

// Stylesheet returns the stylesheet link tag. prefix is the relative path from
// the page to the site root ("" for the index, "../" for detail pages).
func Stylesheet(prefix string) string {
	return fmt.Sprintf(stylesheetFormat, prefix, StylesheetName)
}
