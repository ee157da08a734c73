// Package output persists generated files. DirWriter writes below a root
// directory on disk; MemoryWriter keeps files in memory for tests and dry runs.
package output

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrPathEscapes is returned for paths that would leave the output root.
var ErrPathEscapes = errors.New("output: path escapes output root")

// Writer stores a file at a slash separated path relative to the output root.
type Writer interface {
	WriteFile(ctx context.Context, name string, data []byte) error
}

// CleanPath normalises name and rejects absolute paths or paths that climb
// above the root.
func CleanPath(name string) (string, error) {
	cleaned := path.Clean(strings.ReplaceAll(name, "\\", "/"))
	if cleaned == "." || cleaned == "" || path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %q", ErrPathEscapes, name)
	}
	return cleaned, nil
}

// DirWriter writes files below Root, creating parent directories as needed.
type DirWriter struct {
	Root string
	// FileMode defaults to 0o644.
	FileMode os.FileMode
}

var _ Writer = DirWriter{}

// NewDirWriter returns a DirWriter rooted at root. An empty root means the
// working directory.
func NewDirWriter(root string) DirWriter {
	if root == "" {
		root = "."
	}
	return DirWriter{Root: root, FileMode: 0o644}
}

func (w DirWriter) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cleaned, err := CleanPath(name)
	if err != nil {
		return err
	}

	target := filepath.Join(w.Root, filepath.FromSlash(cleaned))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("output: create directory for %s: %w", cleaned, err)
	}

	mode := w.FileMode
	if mode == 0 {
		mode = 0o644
	}
	if err := os.WriteFile(target, data, mode); err != nil {
		return fmt.Errorf("output: write %s: %w", cleaned, err)
	}
	return nil
}

// MemoryWriter records written files. The zero value is ready to use.
type MemoryWriter struct {
	mu    sync.Mutex
	files map[string][]byte
}

var _ Writer = (*MemoryWriter)(nil)

// NewMemoryWriter returns an empty MemoryWriter.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{files: make(map[string][]byte)}
}

func (w *MemoryWriter) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cleaned, err := CleanPath(name)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files == nil {
		w.files = make(map[string][]byte)
	}
	w.files[cleaned] = append([]byte(nil), data...)
	return nil
}

// File returns the content written at name.
func (w *MemoryWriter) File(name string) ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	data, ok := w.files[name]
	return data, ok
}

// Names returns the written paths in sorted order.
func (w *MemoryWriter) Names() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	names := make([]string, 0, len(w.files))
	for name := range w.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
