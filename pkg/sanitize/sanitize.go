// Package sanitize strips markup from gallery field values. Galleries render
// fields verbatim by default; this package only runs when a caller opts in.
package sanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Text removes every HTML element from raw and escapes what remains so the
// result is safe inside element content and single quoted attributes.
func Text(raw string) string {
	if raw == "" {
		return ""
	}
	return textSanitizer().Sanitize(raw)
}

// Image returns a copy of img whose fields have been passed through Text.
// Non-string values are converted to text first.
func Image(img gallery.Image) gallery.Image {
	return gallery.New(
		Text(img.ImagePath().String()),
		Text(img.SourceURL().String()),
		Text(img.AttributionURL().String()),
		Text(img.AttributionName().String()),
	)
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
