package site

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
)

// Layout selects how records are spread over pages. The two layouts use
// different path conventions and are never mixed within one site.
type Layout string

const (
	// LayoutFlat renders every full fragment into index.html with image paths
	// used verbatim.
	LayoutFlat Layout = "flat"
	// LayoutDetail renders thumbnails into index.html and one page per image
	// under subpages/, whose image src is prefixed with "../".
	LayoutDetail Layout = "detail"
)

// IndexPage is the gallery entry page.
const IndexPage = "index.html"

// ParseLayout validates a layout name. Empty input selects LayoutFlat.
func ParseLayout(raw string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(raw))) {
	case "", LayoutFlat:
		return LayoutFlat, nil
	case LayoutDetail:
		return LayoutDetail, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLayout, raw)
	}
}

// DefaultLicense returns the caption galleries of this layout were published
// with.
func (l Layout) DefaultLicense() string {
	if l == LayoutDetail {
		return gallery.LicenseCC0
	}
	return gallery.LicenseCCBY
}

// DetailImagePrefix is the image src prefix of full fragments on detail pages.
const DetailImagePrefix = "../"

// Layouts lists every supported layout.
func Layouts() []Layout {
	return []Layout{LayoutFlat, LayoutDetail}
}
