package render

import (
	"github.com/goliatone/go-gallerygen/pkg/gallery"
	"github.com/goliatone/go-gallerygen/pkg/sanitize"
)

// PrepareImage applies option-driven field transforms before rendering. Only
// Sanitize changes the record today.
func PrepareImage(img gallery.Image, options RenderOptions) gallery.Image {
	if options.Sanitize {
		return sanitize.Image(img)
	}
	return img
}
