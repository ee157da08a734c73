package orchestrator

import (
	"context"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
)

// Transformer rewrites the manifest records before rendering. Implementations
// can drop, reorder or replace images.
type Transformer interface {
	Transform(ctx context.Context, images []gallery.Image) ([]gallery.Image, error)
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, images []gallery.Image) ([]gallery.Image, error)

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, images []gallery.Image) ([]gallery.Image, error) {
	if fn == nil {
		return images, nil
	}
	return fn(ctx, images)
}

// SkipEmptyPaths drops records without an image path. Such records render a
// broken image and, in the detail layout, collide on subpages/.html.
func SkipEmptyPaths() Transformer {
	return TransformerFunc(func(_ context.Context, images []gallery.Image) ([]gallery.Image, error) {
		out := make([]gallery.Image, 0, len(images))
		for _, img := range images {
			if img.ImagePath().String() == "" {
				continue
			}
			out = append(out, img)
		}
		return out, nil
	})
}
