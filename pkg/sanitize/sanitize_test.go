package sanitize_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
	"github.com/goliatone/go-gallerygen/pkg/sanitize"
)

func TestText_StripsMarkup(t *testing.T) {
	got := sanitize.Text("<script>alert(1)</script><b>Ada</b>")
	if strings.Contains(got, "<") {
		t.Fatalf("expected markup to be removed, got %q", got)
	}
	if !strings.Contains(got, "Ada") {
		t.Fatalf("expected text content to survive, got %q", got)
	}
}

func TestText_EscapesQuotes(t *testing.T) {
	got := sanitize.Text("x' onerror='alert(1)")
	if strings.Contains(got, "'") {
		t.Fatalf("expected single quotes to be escaped, got %q", got)
	}
}

func TestText_Empty(t *testing.T) {
	if got := sanitize.Text(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestImage_SanitisesEveryField(t *testing.T) {
	img := gallery.New("<i>a.jpg</i>", "<b>src</b>", "<u>attr</u>", "<em>Name</em>")
	clean := sanitize.Image(img)

	want := map[string]string{
		"image_path":       "a.jpg",
		"source_url":       "src",
		"attribution_url":  "attr",
		"attribution_name": "Name",
	}
	for key, value := range clean.Fields() {
		if value != want[key] {
			t.Fatalf("field %s: want %q, got %q", key, want[key], value)
		}
	}
}

func TestImage_ConvertsNumbers(t *testing.T) {
	clean := sanitize.Image(gallery.New(1, 2, 3, 4))
	if got := clean.AttributionName().String(); got != "4" {
		t.Fatalf("expected %q, got %q", "4", got)
	}
}
