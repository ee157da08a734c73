package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
	"github.com/goliatone/go-gallerygen/pkg/render"
	rendertemplate "github.com/goliatone/go-gallerygen/pkg/render/template"
	gotemplate "github.com/goliatone/go-gallerygen/pkg/render/template/gotemplate"
)

// Name is the registry name of the vanilla renderer.
const Name = "vanilla"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide the same template paths as TemplatesFS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk laid out like
// TemplatesFS. Files missing from the directory are taken from the template
// bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer renders gallery fragments from pongo2 templates. Without a theme it
// emits exactly the markup of gallery.Template.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithBaseDir(cfg.templateDir),
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) RenderImage(ctx context.Context, img gallery.Image, options render.RenderOptions) (string, error) {
	img = render.PrepareImage(img, options)
	data := imageContext(img)
	data["image_prefix"] = options.ImagePrefix
	data["license"] = options.LicenseOrDefault()

	return r.execute(ctx, "image", partial(options.Theme, PartialImage, ImageTemplate), img, data)
}

func (r *Renderer) RenderThumb(ctx context.Context, img gallery.Image, options render.RenderOptions) (string, error) {
	img = render.PrepareImage(img, options)
	return r.execute(ctx, "thumb", partial(options.Theme, PartialThumb, ThumbTemplate), img, imageContext(img))
}

func (r *Renderer) RenderStylesheet(ctx context.Context, prefix string, options render.RenderOptions) (string, error) {
	data := map[string]any{
		"href":     stylesheetHref(options.Theme, prefix),
		"css_vars": cssVarsBlock(options.Theme),
	}
	return r.execute(ctx, "stylesheet", partial(options.Theme, PartialStylesheet, StylesheetTemplate), gallery.Image{}, data)
}

func (r *Renderer) execute(ctx context.Context, fragment, name string, img gallery.Image, data map[string]any) (string, error) {
	if r.templates == nil {
		return "", fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return "", &render.Error{
			Renderer: Name,
			Fragment: fragment,
			Image:    img.ImagePath().String(),
			Err:      err,
		}
	}
	return out, nil
}

func imageContext(img gallery.Image) map[string]any {
	fields := img.Fields()
	data := make(map[string]any, len(fields)+2)
	for key, value := range fields {
		data[key] = value
	}
	return data
}

func partial(cfg *theme.RendererConfig, key, fallback string) string {
	if cfg == nil {
		return fallback
	}
	if name := strings.TrimSpace(cfg.Partials[key]); name != "" {
		return name
	}
	return fallback
}

func stylesheetHref(cfg *theme.RendererConfig, prefix string) string {
	if cfg != nil {
		if href := strings.TrimSpace(cfg.Tokens[TokenStylesheetURL]); href != "" {
			return href
		}
	}
	return prefix + gallery.StylesheetName
}

func cssVarsBlock(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root{")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(":")
		b.WriteString(cfg.CSSVars[key])
		b.WriteString(";")
	}
	b.WriteString("}")
	return b.String()
}
