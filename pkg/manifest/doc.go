// Package manifest loads the list of gallery images from CSV, YAML or JSON
// manifests. CSV manifests have no header row and carry the record fields in
// positional order; YAML and JSON manifests name each field. Loaders for
// files, fs.FS entries and HTTP URLs live under internal/manifest/loader.
package manifest
