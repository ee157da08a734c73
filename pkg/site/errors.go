package site

import "errors"

// ErrUnknownLayout is returned by ParseLayout for unsupported names.
var ErrUnknownLayout = errors.New("site: unknown layout")
