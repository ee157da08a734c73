package gallerygen

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
	"github.com/goliatone/go-gallerygen/pkg/manifest"
	"github.com/goliatone/go-gallerygen/pkg/orchestrator"
	"github.com/goliatone/go-gallerygen/pkg/output"
	"github.com/goliatone/go-gallerygen/pkg/site"
)

func TestAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), gallery.StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), ".thumb") {
		t.Fatalf("expected stylesheet to style thumbnails")
	}
}

func TestEmbeddedTemplatesContainsImageTemplate(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "templates/image.tmpl"); err != nil {
		t.Fatalf("expected image template: %v", err)
	}
}

func TestGenerateSiteFromImages(t *testing.T) {
	images := []Image{gallery.New("images/cat.jpg", "src", "attr", "Ada")}

	s, err := GenerateSiteFromImages(context.Background(), images, site.LayoutDetail)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !s.Has("subpages/cat.html") {
		t.Fatalf("expected detail page, got %+v", s.Pages)
	}
}

func TestBuildSiteWithFSLoader(t *testing.T) {
	files := fstest.MapFS{
		"gallery/images.csv": {Data: []byte("images/cat.jpg,src,attr,Ada\n")},
	}
	writer := output.NewMemoryWriter()

	_, err := BuildSite(context.Background(),
		manifest.SourceFromFS("gallery/images.csv"),
		site.LayoutFlat,
		orchestrator.WithLoader(NewLoader(manifest.WithFileSystem(files))),
		orchestrator.WithWriter(writer),
	)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	index, ok := writer.File(site.IndexPage)
	if !ok {
		t.Fatalf("index.html not written")
	}
	if !strings.Contains(string(index), "<a href='attr'>Ada</a>, CC BY 0.0<br>") {
		t.Fatalf("unexpected index content: %s", index)
	}
}

func TestGenerateSiteRequiresSource(t *testing.T) {
	if _, err := GenerateSite(context.Background(), nil, site.LayoutFlat); err == nil {
		t.Fatalf("expected error for nil source")
	}
}
