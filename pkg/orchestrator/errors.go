package orchestrator

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-gallerygen/pkg/site"
)

// BrokenLinksError is returned when link checking is enabled and a page
// references a page or stylesheet the build does not produce.
type BrokenLinksError struct {
	Links []site.BrokenLink
}

func (e *BrokenLinksError) Error() string {
	parts := make([]string, 0, len(e.Links))
	for _, link := range e.Links {
		parts = append(parts, fmt.Sprintf("%s -> %s", link.Page, link.Target))
	}
	return fmt.Sprintf("orchestrator: %d broken link(s): %s", len(e.Links), strings.Join(parts, ", "))
}
