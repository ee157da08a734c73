// Package site assembles rendered fragments into gallery pages, keeps the
// result in memory and verifies internal links before anything is written.
package site

import (
	"context"
	"fmt"

	"github.com/goliatone/go-gallerygen/pkg/output"
)

// Page is one generated HTML file.
type Page struct {
	Path    string
	Content string
}

// Asset is a static file copied next to the pages, such as style.css.
type Asset struct {
	Path string
	Data []byte
}

// Site is the in-memory result of a build. Page order follows the manifest,
// with the index first.
type Site struct {
	Layout Layout
	Pages  []Page
	Assets []Asset
}

// Page returns the page stored at path.
func (s *Site) Page(path string) (Page, bool) {
	if s == nil {
		return Page{}, false
	}
	for _, page := range s.Pages {
		if page.Path == path {
			return page, true
		}
	}
	return Page{}, false
}

// Has reports whether path names a page or an asset.
func (s *Site) Has(path string) bool {
	if _, ok := s.Page(path); ok {
		return true
	}
	if s == nil {
		return false
	}
	for _, asset := range s.Assets {
		if asset.Path == path {
			return true
		}
	}
	return false
}

// AddAsset appends a static file, replacing an asset with the same path.
func (s *Site) AddAsset(path string, data []byte) {
	for i := range s.Assets {
		if s.Assets[i].Path == path {
			s.Assets[i].Data = data
			return
		}
	}
	s.Assets = append(s.Assets, Asset{Path: path, Data: data})
}

// setPage stores content at path and reports whether an earlier page was
// replaced.
func (s *Site) setPage(path, content string) bool {
	for i := range s.Pages {
		if s.Pages[i].Path == path {
			s.Pages[i].Content = content
			return true
		}
	}
	s.Pages = append(s.Pages, Page{Path: path, Content: content})
	return false
}

// Write stores every page and asset through w, stopping at the first error.
func (s *Site) Write(ctx context.Context, w output.Writer) error {
	if s == nil {
		return nil
	}
	for _, page := range s.Pages {
		if err := w.WriteFile(ctx, page.Path, []byte(page.Content)); err != nil {
			return fmt.Errorf("site: write page %s: %w", page.Path, err)
		}
	}
	for _, asset := range s.Assets {
		if err := w.WriteFile(ctx, asset.Path, asset.Data); err != nil {
			return fmt.Errorf("site: write asset %s: %w", asset.Path, err)
		}
	}
	return nil
}
