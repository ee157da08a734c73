// Package gallery defines the image record rendered into the gallery pages and
// the fixed fragment templates that turn a record into HTML. Record fields are
// loosely typed: constructors accept any value and the text form is produced
// only when a template substitutes it. Nothing in this package escapes HTML;
// callers that need sanitised output opt in through pkg/sanitize.
package gallery
