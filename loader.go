package gallerygen

import (
	internalLoader "github.com/goliatone/go-gallerygen/internal/manifest/loader"
	"github.com/goliatone/go-gallerygen/pkg/manifest"
)

// NewLoader constructs a manifest loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...manifest.LoaderOption) manifest.Loader {
	cfg := manifest.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
