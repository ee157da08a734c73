package gallery

// DefaultAttributionName is shown when a record carries no creator name.
const DefaultAttributionName = "Anonymous"

// FieldCount is the number of positional fields a record consumes.
const FieldCount = 4

// Image describes the display metadata of one gallery image. The zero value is
// not useful; build records with New, NewImage or FromRow so defaults apply.
type Image struct {
	imagePath       Value
	sourceURL       Value
	attributionURL  Value
	attributionName Value
}

// Option sets a single named field on NewImage.
type Option func(*Image)

// WithImagePath sets the relative path of the image asset.
func WithImagePath(v any) Option {
	return func(img *Image) {
		img.imagePath = ValueOf(v)
	}
}

// WithSourceURL sets the link to the original hosted image.
func WithSourceURL(v any) Option {
	return func(img *Image) {
		img.sourceURL = ValueOf(v)
	}
}

// WithAttributionURL sets the link to the creator profile.
func WithAttributionURL(v any) Option {
	return func(img *Image) {
		img.attributionURL = ValueOf(v)
	}
}

// WithAttributionName sets the creator display name.
func WithAttributionName(v any) Option {
	return func(img *Image) {
		img.attributionName = ValueOf(v)
	}
}

func defaultImage() Image {
	return Image{
		imagePath:       ValueOf(""),
		sourceURL:       ValueOf(""),
		attributionURL:  ValueOf(""),
		attributionName: ValueOf(DefaultAttributionName),
	}
}

// New builds a record from positional values in the order image path, source
// URL, attribution URL, attribution name. Missing trailing values keep their
// defaults and anything past the fourth value is ignored.
func New(values ...any) Image {
	img := defaultImage()
	setters := [FieldCount]*Value{
		&img.imagePath,
		&img.sourceURL,
		&img.attributionURL,
		&img.attributionName,
	}
	for i, v := range values {
		if i >= FieldCount {
			break
		}
		*setters[i] = ValueOf(v)
	}
	return img
}

// NewImage builds a record from named options. Fields without an option keep
// their defaults.
func NewImage(options ...Option) Image {
	img := defaultImage()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&img)
	}
	return img
}

// FromRow maps a manifest row onto a record using the positional rules of New.
func FromRow(row []string) Image {
	values := make([]any, 0, FieldCount)
	for i, cell := range row {
		if i >= FieldCount {
			break
		}
		values = append(values, cell)
	}
	return New(values...)
}

func (img Image) ImagePath() Value       { return img.imagePath }
func (img Image) SourceURL() Value       { return img.sourceURL }
func (img Image) AttributionURL() Value  { return img.attributionURL }
func (img Image) AttributionName() Value { return img.attributionName }

// Fields returns the textual form of every field keyed by its template name.
func (img Image) Fields() map[string]string {
	return map[string]string{
		"image_path":       img.imagePath.String(),
		"source_url":       img.sourceURL.String(),
		"attribution_url":  img.attributionURL.String(),
		"attribution_name": img.attributionName.String(),
	}
}
