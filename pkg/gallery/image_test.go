package gallery_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
)

func TestNew_PositionalFields(t *testing.T) {
	img := gallery.New("image.jpg", "www.example.com/image_url", "www.example.com/creator_url", "A Creator's Name")

	want := map[string]string{
		"image_path":       "image.jpg",
		"source_url":       "www.example.com/image_url",
		"attribution_url":  "www.example.com/creator_url",
		"attribution_name": "A Creator's Name",
	}
	if diff := cmp.Diff(want, img.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_IgnoresExcessValues(t *testing.T) {
	exact := gallery.New("image.jpg", "src", "attr", "name")
	excess := gallery.New("image.jpg", "src", "attr", "name", "Excess data", "Even more excess data!")

	if diff := cmp.Diff(exact.Fields(), excess.Fields()); diff != "" {
		t.Fatalf("excess values changed the record (-want +got):\n%s", diff)
	}
}

func TestNew_Defaults(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		want   map[string]string
	}{
		{
			name:   "no values",
			values: nil,
			want: map[string]string{
				"image_path":       "",
				"source_url":       "",
				"attribution_url":  "",
				"attribution_name": "Anonymous",
			},
		},
		{
			name:   "path only",
			values: []any{"images/cat.jpg"},
			want: map[string]string{
				"image_path":       "images/cat.jpg",
				"source_url":       "",
				"attribution_url":  "",
				"attribution_name": "Anonymous",
			},
		},
		{
			name:   "three values",
			values: []any{"a.jpg", "b", "c"},
			want: map[string]string{
				"image_path":       "a.jpg",
				"source_url":       "b",
				"attribution_url":  "c",
				"attribution_name": "Anonymous",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gallery.New(tt.values...).Fields()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNew_KeepsNonStringValues(t *testing.T) {
	img := gallery.New(1, 2, 3, 4)

	if raw, ok := img.ImagePath().Raw().(int); !ok || raw != 1 {
		t.Fatalf("expected raw int 1, got %#v", img.ImagePath().Raw())
	}
	if got := img.AttributionName().String(); got != "4" {
		t.Fatalf("expected attribution name %q, got %q", "4", got)
	}
}

func TestNewImage_NamedOptions(t *testing.T) {
	img := gallery.NewImage(
		gallery.WithSourceURL("www.example.com/image_url"),
		gallery.WithAttributionName("A Creator's Name"),
	)

	want := map[string]string{
		"image_path":       "",
		"source_url":       "www.example.com/image_url",
		"attribution_url":  "",
		"attribution_name": "A Creator's Name",
	}
	if diff := cmp.Diff(want, img.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFromRow(t *testing.T) {
	short := gallery.FromRow([]string{"images/dog.jpg", "https://example.com/dog"})
	if got := short.AttributionName().String(); got != gallery.DefaultAttributionName {
		t.Fatalf("short row: expected default name, got %q", got)
	}
	if got := short.AttributionURL().String(); got != "" {
		t.Fatalf("short row: expected empty attribution url, got %q", got)
	}

	long := gallery.FromRow([]string{"a.jpg", "b", "c", "d", "e"})
	if diff := cmp.Diff(gallery.New("a.jpg", "b", "c", "d").Fields(), long.Fields()); diff != "" {
		t.Fatalf("long row mismatch (-want +got):\n%s", diff)
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{in: nil, want: ""},
		{in: "text", want: "text"},
		{in: 42, want: "42"},
		{in: int64(-7), want: "-7"},
		{in: 1.5, want: "1.5"},
		{in: 2.0, want: "2"},
		{in: true, want: "true"},
		{in: []byte("bytes"), want: "bytes"},
		{in: uint8(9), want: "9"},
		{in: &url.URL{Scheme: "https", Host: "example.com"}, want: "https://example.com"},
		{in: (*url.URL)(nil), want: ""},
	}

	for _, tt := range tests {
		if got := gallery.ValueOf(tt.in).String(); got != tt.want {
			t.Fatalf("ValueOf(%#v).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTemplate_RenderTypedNilField(t *testing.T) {
	img := gallery.New("a.jpg", (*url.URL)(nil))

	got := gallery.NewTemplate(gallery.LicenseCCBY).Render(img)
	want := "<img src='a.jpg'><p><a href=''>Image</a> by <a href=''>Anonymous</a>, CC BY 0.0<br>"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestValueOf_DoesNotRewrap(t *testing.T) {
	v := gallery.ValueOf(7)
	if gallery.ValueOf(v) != v {
		t.Fatalf("expected ValueOf to return existing Value unchanged")
	}
}
