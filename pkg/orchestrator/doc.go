// Package orchestrator runs a gallery build end to end: it loads the manifest,
// applies transformers, renders the pages with the site builder and writes
// them out. Missing dependencies default to the built-in implementations: the
// file/fs/HTTP manifest loader, a registry holding the plain and vanilla
// renderers, and a writer rooted at the working directory.
package orchestrator
