package gallerygen

import (
	"io/fs"

	"github.com/goliatone/go-gallerygen/pkg/renderers/vanilla"
)

// AssetsFS exposes the static files written next to the generated pages,
// currently style.css, so Go applications can serve them directly.
//
// Typical mount:
//
//	mux.Handle("/gallery/",
//	  http.StripPrefix("/gallery/",
//	    http.FileServerFS(gallerygen.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
