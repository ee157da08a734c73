package manifest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// parseCSV reads comma separated rows without a header. Rows may have any
// number of fields; short rows fall back to record defaults. Empty lines are
// skipped by encoding/csv.
func parseCSV(data []byte) ([]gallery.Image, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.Comma = ','
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var images []gallery.Image
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		images = append(images, gallery.FromRow(row))
	}
	return images, nil
}
