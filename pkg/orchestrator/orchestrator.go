package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-gallerygen/internal/manifest/loader"
	"github.com/goliatone/go-gallerygen/pkg/gallery"
	"github.com/goliatone/go-gallerygen/pkg/manifest"
	"github.com/goliatone/go-gallerygen/pkg/output"
	"github.com/goliatone/go-gallerygen/pkg/render"
	"github.com/goliatone/go-gallerygen/pkg/renderers/plain"
	"github.com/goliatone/go-gallerygen/pkg/renderers/vanilla"
	"github.com/goliatone/go-gallerygen/pkg/site"
)

const (
	defaultRendererName   = vanilla.Name
	defaultRequestTimeout = 30 * time.Second
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom manifest loader.
func WithLoader(loader manifest.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithWriter sets where Build stores the generated files.
func WithWriter(writer output.Writer) Option {
	return func(o *Orchestrator) {
		o.writer = writer
	}
}

// WithLogger routes pipeline logs to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithTransformer registers transformers applied in order to the manifest
// records before rendering.
func WithTransformer(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		o.transformers = append(o.transformers, transformers...)
	}
}

// WithStylesheet replaces the bundled style.css written next to the pages.
func WithStylesheet(data []byte) Option {
	return func(o *Orchestrator) {
		o.stylesheet = data
	}
}

// Orchestrator coordinates the full pipeline from manifest to written
// gallery.
type Orchestrator struct {
	loader          manifest.Loader
	registry        *render.Registry
	defaultRenderer string
	writer          output.Writer
	logger          *zap.Logger
	transformers    []Transformer
	stylesheet      []byte
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one gallery build.
type Request struct {
	// Source identifies the manifest. Optional when Manifest is supplied.
	Source manifest.Source

	// Manifest bypasses the loader when the records are already available.
	Manifest *manifest.Manifest

	// Layout selects flat or detail pages. Empty means flat.
	Layout site.Layout

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// RenderOptions carries the license caption, sanitising and theme. An
	// empty license takes the layout default.
	RenderOptions render.RenderOptions

	// SkipStylesheet leaves style.css out of the site.
	SkipStylesheet bool

	// CheckLinks fails the build when a page links to a missing page or
	// stylesheet.
	CheckLinks bool
}

// Generate loads the manifest and renders every page in memory.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*site.Site, error) {
	return o.generate(ctx, req, o.logger)
}

// Build runs Generate and writes the result through the configured writer.
func (o *Orchestrator) Build(ctx context.Context, req Request) (*site.Site, error) {
	logger := o.logger.With(zap.String("build_id", uuid.NewString()))

	s, err := o.generate(ctx, req, logger)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.Write(ctx, o.writer); err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}

	logger.Info("gallery written",
		zap.String("layout", string(s.Layout)),
		zap.Int("pages", len(s.Pages)),
		zap.Int("assets", len(s.Assets)))
	return s, nil
}

func (o *Orchestrator) generate(ctx context.Context, req Request, logger *zap.Logger) (*site.Site, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	layout, err := site.ParseLayout(string(req.Layout))
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}

	m, err := o.resolveManifest(ctx, req)
	if err != nil {
		return nil, err
	}
	logger.Debug("manifest loaded",
		zap.String("source", sourceLocation(m.Source())),
		zap.Int("images", m.Len()))

	images, err := o.applyTransformers(ctx, m.Images())
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	builder := site.NewBuilder(renderer, site.WithLogger(logger))
	s, err := builder.Build(ctx, layout, images, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build site: %w", err)
	}

	if !req.SkipStylesheet && len(o.stylesheet) > 0 {
		s.AddAsset(gallery.StylesheetName, o.stylesheet)
	}

	if req.CheckLinks {
		if broken := s.CheckLinks(); len(broken) > 0 {
			return nil, &BrokenLinksError{Links: broken}
		}
	}

	logger.Debug("gallery generated",
		zap.String("renderer", renderer.Name()),
		zap.String("layout", string(layout)),
		zap.Int("pages", len(s.Pages)))
	return s, nil
}

func (o *Orchestrator) resolveManifest(ctx context.Context, req Request) (manifest.Manifest, error) {
	if req.Manifest != nil {
		return *req.Manifest, nil
	}
	if req.Source == nil {
		return manifest.Manifest{}, errors.New("orchestrator: source or manifest is required")
	}
	m, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return manifest.Manifest{}, fmt.Errorf("orchestrator: load manifest: %w", err)
	}
	return m, nil
}

func (o *Orchestrator) applyTransformers(ctx context.Context, images []gallery.Image) ([]gallery.Image, error) {
	for _, transformer := range o.transformers {
		if transformer == nil {
			continue
		}
		var err error
		images, err = transformer.Transform(ctx, images)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: transform images: %w", err)
		}
	}
	return images, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(manifest.NewLoaderOptions(
			manifest.WithHTTPFallback(defaultRequestTimeout),
		))
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(plain.New())
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.writer == nil {
		o.writer = output.NewDirWriter(".")
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.stylesheet == nil {
		o.stylesheet = vanilla.DefaultStylesheet()
	}

	o.defaultsApplied = true
}

func sourceLocation(src manifest.Source) string {
	if src == nil {
		return ""
	}
	return src.Location()
}
