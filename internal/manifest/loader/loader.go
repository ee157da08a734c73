package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-gallerygen/pkg/manifest"
)

// Loader implements manifest.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	maxBytes  int64
	format    manifest.Format
}

var _ manifest.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options manifest.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	maxBytes := options.MaxBytes
	if maxBytes <= 0 {
		maxBytes = manifest.DefaultMaxBytes
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		maxBytes:  maxBytes,
		format:    options.Format,
	}
}

// Load fetches the manifest bytes and parses them.
func (l *Loader) Load(ctx context.Context, src manifest.Source) (manifest.Manifest, error) {
	if src == nil {
		return manifest.Manifest{}, errors.New("manifest: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case manifest.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case manifest.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case manifest.SourceKindURL:
		if !l.allowHTTP {
			return manifest.Manifest{}, errors.New("manifest: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout, l.maxBytes)
	default:
		err = errors.New("manifest: unsupported source kind")
	}
	if err != nil {
		return manifest.Manifest{}, fmt.Errorf("manifest: read %s: %w", src.Location(), err)
	}

	return manifest.Parse(src, l.format, data)
}
