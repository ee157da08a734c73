package gallery_test

import (
	"testing"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
)

func TestDetailPagePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "image.jpg", want: "subpages/image.html"},
		{path: "images/image.jpg", want: "subpages/image.html"},
		{path: "", want: "subpages/.html"},
		{path: "images/", want: "subpages/.html"},
		{path: "images/archive.tar.gz", want: "subpages/archive.html"},
		{path: "a/b/c.jpg", want: "subpages/b.html"},
		{path: "noext", want: "subpages/noext.html"},
	}

	for _, tt := range tests {
		if got := gallery.DetailPagePath(tt.path); got != tt.want {
			t.Fatalf("DetailPagePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestImage_DetailPagePath(t *testing.T) {
	correct := gallery.New("image.jpg", "www.example.com/image_url", "www.example.com/creator_url", "A Creator's Name")
	if got := correct.DetailPagePath(); got != "subpages/image.html" {
		t.Fatalf("expected subpages/image.html, got %q", got)
	}

	missing := gallery.NewImage(gallery.WithSourceURL("www.example.com/image_url"))
	if got := missing.DetailPagePath(); got != "subpages/.html" {
		t.Fatalf("expected subpages/.html, got %q", got)
	}

	numeric := gallery.New(12)
	if got := numeric.DetailPagePath(); got != "subpages/12.html" {
		t.Fatalf("expected subpages/12.html, got %q", got)
	}
}
