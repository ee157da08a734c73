package site

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
	"github.com/goliatone/go-gallerygen/pkg/render"
)

// Builder composes rendered fragments into pages.
type Builder struct {
	renderer render.Renderer
	logger   *zap.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger routes build diagnostics to logger.
func WithLogger(logger *zap.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder returns a builder that renders with renderer.
func NewBuilder(renderer render.Renderer, options ...BuilderOption) *Builder {
	b := &Builder{
		renderer: renderer,
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Build renders images into the pages of layout. options.License falls back
// to the layout default; options.ImagePrefix is managed by the layout and
// ignored.
func (b *Builder) Build(ctx context.Context, layout Layout, images []gallery.Image, options render.RenderOptions) (*Site, error) {
	if b == nil || b.renderer == nil {
		return nil, errors.New("site: renderer is required")
	}
	if options.License == "" {
		options.License = layout.DefaultLicense()
	}

	switch layout {
	case LayoutFlat:
		return b.buildFlat(ctx, images, options)
	case LayoutDetail:
		return b.buildDetail(ctx, images, options)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, layout)
	}
}

func (b *Builder) buildFlat(ctx context.Context, images []gallery.Image, options render.RenderOptions) (*Site, error) {
	options.ImagePrefix = ""

	index, err := b.renderer.RenderStylesheet(ctx, "", options)
	if err != nil {
		return nil, fmt.Errorf("site: index stylesheet: %w", err)
	}
	for _, img := range images {
		fragment, err := b.renderer.RenderImage(ctx, img, options)
		if err != nil {
			return nil, fmt.Errorf("site: index: %w", err)
		}
		index += fragment
	}

	s := &Site{Layout: LayoutFlat}
	s.setPage(IndexPage, index)
	b.logger.Debug("built flat gallery", zap.Int("images", len(images)))
	return s, nil
}

func (b *Builder) buildDetail(ctx context.Context, images []gallery.Image, options render.RenderOptions) (*Site, error) {
	indexOptions := options
	indexOptions.ImagePrefix = ""
	pageOptions := options
	pageOptions.ImagePrefix = DetailImagePrefix

	index, err := b.renderer.RenderStylesheet(ctx, "", indexOptions)
	if err != nil {
		return nil, fmt.Errorf("site: index stylesheet: %w", err)
	}
	pageStylesheet, err := b.renderer.RenderStylesheet(ctx, DetailImagePrefix, pageOptions)
	if err != nil {
		return nil, fmt.Errorf("site: page stylesheet: %w", err)
	}

	s := &Site{Layout: LayoutDetail}
	s.setPage(IndexPage, "")

	for _, img := range images {
		thumb, err := b.renderer.RenderThumb(ctx, img, indexOptions)
		if err != nil {
			return nil, fmt.Errorf("site: index: %w", err)
		}
		index += thumb

		fragment, err := b.renderer.RenderImage(ctx, img, pageOptions)
		if err != nil {
			return nil, fmt.Errorf("site: detail page: %w", err)
		}
		// The thumbnail link is derived from the prepared image, so the page
		// path must be too.
		path := render.PrepareImage(img, indexOptions).DetailPagePath()
		if replaced := s.setPage(path, pageStylesheet+fragment); replaced {
			b.logger.Warn("detail page overwritten by a later image",
				zap.String("page", path),
				zap.String("image", img.ImagePath().String()))
		}
	}

	s.setPage(IndexPage, index)
	b.logger.Debug("built detail gallery",
		zap.Int("images", len(images)),
		zap.Int("pages", len(s.Pages)))
	return s, nil
}
