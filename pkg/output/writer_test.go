package output_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-gallerygen/pkg/output"
)

func TestCleanPath(t *testing.T) {
	valid := map[string]string{
		"index.html":            "index.html",
		"subpages/cat.html":     "subpages/cat.html",
		"./subpages//cat.html":  "subpages/cat.html",
		"subpages\\dog.html":    "subpages/dog.html",
		"subpages/../style.css": "style.css",
	}
	for in, want := range valid {
		got, err := output.CleanPath(in)
		if err != nil {
			t.Fatalf("CleanPath(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("CleanPath(%q) = %q, want %q", in, got, want)
		}
	}

	for _, in := range []string{"", ".", "..", "../index.html", "/etc/passwd"} {
		if _, err := output.CleanPath(in); !errors.Is(err, output.ErrPathEscapes) {
			t.Fatalf("CleanPath(%q): expected ErrPathEscapes, got %v", in, err)
		}
	}
}

func TestDirWriter_CreatesSubdirectories(t *testing.T) {
	root := t.TempDir()
	w := output.NewDirWriter(root)

	if err := w.WriteFile(context.Background(), "subpages/cat.html", []byte("<p>cat</p>")); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "subpages", "cat.html"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "<p>cat</p>" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestDirWriter_RejectsEscapes(t *testing.T) {
	w := output.NewDirWriter(t.TempDir())
	if err := w.WriteFile(context.Background(), "../evil.html", nil); !errors.Is(err, output.ErrPathEscapes) {
		t.Fatalf("expected ErrPathEscapes, got %v", err)
	}
}

func TestMemoryWriter(t *testing.T) {
	w := output.NewMemoryWriter()
	ctx := context.Background()

	if err := w.WriteFile(ctx, "index.html", []byte("a")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.WriteFile(ctx, "subpages/x.html", []byte("b")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.WriteFile(ctx, "index.html", []byte("c")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	if diff := cmp.Diff([]string{"index.html", "subpages/x.html"}, w.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if data, _ := w.File("index.html"); string(data) != "c" {
		t.Fatalf("expected overwritten content, got %q", data)
	}
}

func TestWriters_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	writers := []output.Writer{output.NewDirWriter(t.TempDir()), output.NewMemoryWriter()}
	for _, w := range writers {
		if err := w.WriteFile(ctx, "index.html", nil); !errors.Is(err, context.Canceled) {
			t.Fatalf("%T: expected context.Canceled, got %v", w, err)
		}
	}
}
