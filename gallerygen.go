// Package gallerygen builds static HTML photo galleries from an image
// manifest. The root package re-exports the pieces most callers need; the
// pkg/ tree holds the full API.
package gallerygen

import (
	"context"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
	"github.com/goliatone/go-gallerygen/pkg/manifest"
	"github.com/goliatone/go-gallerygen/pkg/orchestrator"
	"github.com/goliatone/go-gallerygen/pkg/render"
	"github.com/goliatone/go-gallerygen/pkg/site"
)

// Image aliases gallery.Image for callers that only import the root package.
type Image = gallery.Image

// RenderOptions describes per-build overrides such as the license caption.
type RenderOptions = render.RenderOptions

// Site is the in-memory result of a build.
type Site = site.Site

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateSite loads the manifest and renders every page of the requested
// layout in memory without writing anything.
func GenerateSite(ctx context.Context, source manifest.Source, layout site.Layout, options ...orchestrator.Option) (*site.Site, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source: source,
		Layout: layout,
	})
}

// GenerateSiteFromImages renders records already held in memory, bypassing
// the loader stage.
func GenerateSiteFromImages(ctx context.Context, images []gallery.Image, layout site.Layout, options ...orchestrator.Option) (*site.Site, error) {
	m := manifest.New(nil, images)
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Manifest: &m,
		Layout:   layout,
	})
}

// BuildSite loads the manifest, renders the layout and writes the files
// through the writer configured with orchestrator.WithWriter.
func BuildSite(ctx context.Context, source manifest.Source, layout site.Layout, options ...orchestrator.Option) (*site.Site, error) {
	gen := orchestrator.New(options...)
	return gen.Build(ctx, orchestrator.Request{
		Source: source,
		Layout: layout,
	})
}
