// Package template defines the template engine seam gallery renderers rely on.
// The gotemplate subpackage provides the pongo2 backed implementation used by
// the vanilla renderer.
package template
