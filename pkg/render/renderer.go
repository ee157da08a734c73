package render

import (
	"context"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
)

// Renderer converts gallery records into HTML fragments. Implementations must
// produce the same markup for the same record and options.
type Renderer interface {
	Name() string
	ContentType() string
	// RenderImage returns the full fragment: image, source link, attribution
	// and license caption.
	RenderImage(ctx context.Context, img gallery.Image, options RenderOptions) (string, error)
	// RenderThumb returns the thumbnail link to the record's detail page.
	RenderThumb(ctx context.Context, img gallery.Image, options RenderOptions) (string, error)
	// RenderStylesheet returns the stylesheet link for a page whose path to the
	// site root is prefix.
	RenderStylesheet(ctx context.Context, prefix string, options RenderOptions) (string, error)
}
