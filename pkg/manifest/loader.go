package manifest

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches manifests from files, fs.FS entries or HTTP. The
// implementation lives in internal/manifest/loader.
type Loader interface {
	Load(ctx context.Context, src Source) (Manifest, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources.
	FileSystem fs.FS

	// HTTPClient enables URL sources. Nil keeps the loader offline unless
	// AllowHTTPFallback is set.
	HTTPClient *http.Client

	// AllowHTTPFallback enables URL sources with a default client.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration

	// Format forces the manifest format instead of guessing from the
	// location extension.
	Format Format

	// MaxBytes caps the size of a remote manifest. Zero means
	// DefaultMaxBytes.
	MaxBytes int64
}

// DefaultMaxBytes is the largest remote manifest read when MaxBytes is unset.
const DefaultMaxBytes int64 = 10 << 20

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for SourceFromFS.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote manifests.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading with a default client and an optional
// timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// WithFormat forces the manifest format.
func WithFormat(format Format) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Format = format
	}
}

// WithMaxBytes caps the size of remote manifests.
func WithMaxBytes(limit int64) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.MaxBytes = limit
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
