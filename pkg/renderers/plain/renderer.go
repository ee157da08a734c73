// Package plain renders gallery fragments with gallery.Template directly,
// without a template engine. Output never fails for a constructed record.
package plain

import (
	"context"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
	"github.com/goliatone/go-gallerygen/pkg/render"
)

// Name is the registry name of the plain renderer.
const Name = "plain"

// Renderer adapts gallery.Template to the render.Renderer contract. Themes
// are ignored.
type Renderer struct{}

var _ render.Renderer = Renderer{}

// New returns the plain renderer.
func New() Renderer {
	return Renderer{}
}

func (Renderer) Name() string {
	return Name
}

func (Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (Renderer) RenderImage(ctx context.Context, img gallery.Image, options render.RenderOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return options.Template().Render(render.PrepareImage(img, options)), nil
}

func (Renderer) RenderThumb(ctx context.Context, img gallery.Image, options render.RenderOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return options.Template().RenderThumb(render.PrepareImage(img, options)), nil
}

func (Renderer) RenderStylesheet(ctx context.Context, prefix string, _ render.RenderOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return gallery.Stylesheet(prefix), nil
}
