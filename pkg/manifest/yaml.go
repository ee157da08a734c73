package manifest

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
)

// Keys accepted for named manifest entries.
const (
	KeyImage          = "image"
	KeySource         = "source"
	KeyAttributionURL = "attribution_url"
	KeyAttribution    = "attribution"
)

type document struct {
	Images []any `yaml:"images"`
}

// parseYAML accepts a top level list, a mapping with an images list, or a
// single named entry.
// Each entry is a mapping of named fields or a positional list. Scalars keep
// their decoded type, so numeric values render as numbers.
func parseYAML(data []byte) ([]gallery.Image, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	var entries []any
	switch v := root.(type) {
	case nil:
		return nil, nil
	case []any:
		entries = v
	case map[string]any:
		if _, ok := v["images"]; !ok {
			if !isEntry(v) {
				return nil, errors.New("missing images list")
			}
			entries = []any{v}
			break
		}
		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		entries = doc.Images
	default:
		return nil, fmt.Errorf("expected a list of images, got %T", root)
	}

	images := make([]gallery.Image, 0, len(entries))
	for i, entry := range entries {
		img, err := imageFromEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		images = append(images, img)
	}
	return images, nil
}

func imageFromEntry(entry any) (gallery.Image, error) {
	switch v := entry.(type) {
	case []any:
		return gallery.New(v...), nil
	case map[string]any:
		var options []gallery.Option
		if value, ok := lookup(v, KeyImage); ok {
			options = append(options, gallery.WithImagePath(value))
		}
		if value, ok := lookup(v, KeySource); ok {
			options = append(options, gallery.WithSourceURL(value))
		}
		if value, ok := lookup(v, KeyAttributionURL); ok {
			options = append(options, gallery.WithAttributionURL(value))
		}
		if value, ok := lookup(v, KeyAttribution); ok {
			options = append(options, gallery.WithAttributionName(value))
		}
		return gallery.NewImage(options...), nil
	case string:
		return gallery.New(v), nil
	default:
		return gallery.Image{}, fmt.Errorf("unsupported entry type %T", entry)
	}
}

func isEntry(m map[string]any) bool {
	for _, key := range []string{KeyImage, KeySource, KeyAttributionURL, KeyAttribution} {
		if _, ok := m[key]; ok {
			return true
		}
	}
	return false
}

// lookup treats null values as missing so defaults still apply.
func lookup(entry map[string]any, key string) (any, bool) {
	value, ok := entry[key]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}
