package manifest

import (
	"fmt"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
)

// Manifest is the ordered list of images read from one source.
type Manifest struct {
	source Source
	images []gallery.Image
}

// New wraps images that did not come from a file, e.g. records built in code.
func New(source Source, images []gallery.Image) Manifest {
	return Manifest{source: source, images: append([]gallery.Image(nil), images...)}
}

// Parse decodes data according to format. An empty format is derived from the
// source location.
func Parse(src Source, format Format, data []byte) (Manifest, error) {
	if format == "" {
		location := ""
		if src != nil {
			location = src.Location()
		}
		format = FormatFor(location)
	}

	var (
		images []gallery.Image
		err    error
	)
	switch format {
	case FormatCSV:
		images, err = parseCSV(data)
	case FormatYAML, FormatJSON:
		images, err = parseYAML(data)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest: parse %s: %w", sourceName(src), err)
	}
	return Manifest{source: src, images: images}, nil
}

// Source returns where the manifest was loaded from. It may be nil.
func (m Manifest) Source() Source {
	return m.source
}

// Images returns the records in manifest order.
func (m Manifest) Images() []gallery.Image {
	return append([]gallery.Image(nil), m.images...)
}

// Len returns the number of records.
func (m Manifest) Len() int {
	return len(m.images)
}

func sourceName(src Source) string {
	if src == nil || src.Location() == "" {
		return "<inline>"
	}
	return src.Location()
}
