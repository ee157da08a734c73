package gallery

import "strings"

// DetailPageDir holds the per-image pages of the detail layout.
const DetailPageDir = "subpages"

// DetailPagePath derives the companion page for the record. The name is the
// path segment after the first "/" (the whole path when there is none) cut at
// its first ".". Malformed paths degrade to partial names, never errors:
// "images/cat.jpg" and "cat.jpg" both give "subpages/cat.html", "" gives
// "subpages/.html".
func (img Image) DetailPagePath() string {
	return DetailPagePath(img.imagePath.String())
}

// DetailPagePath is the string form of Image.DetailPagePath.
func DetailPagePath(imagePath string) string {
	name := imagePath
	if _, after, found := strings.Cut(imagePath, "/"); found {
		name = after
		if segment, _, nested := strings.Cut(name, "/"); nested {
			name = segment
		}
	}
	name, _, _ = strings.Cut(name, ".")
	return DetailPageDir + "/" + name + ".html"
}
