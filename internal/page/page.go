// Package page defines the validated page record and the builder that turns
// a raw property mapping into one, enforcing the configured type and
// language domains, per-type required fields, and date rules.
package page

import (
	"time"
)

// DateFormat is the single canonical date format for parsing and emission.
const DateFormat = "2006-01-02"

// Page is one validated source note destined for the site.
type Page struct {
	// ID is the stable source identifier (path relative to the graph root).
	// Opaque; never emitted.
	ID string

	Title string
	Lang  string
	Type  string
	Slug  string

	// Public pages are the only ones that reach routing and output.
	Public bool

	// Date is the page date; for non-post types a missing or malformed date
	// degrades to the run date.
	Date time.Time

	Description    string
	MenuOrder      string
	TranslationKey string

	// TOC is nil when the note carries no toc property.
	TOC *bool

	// Tags extracted from the body (sorted, deduplicated).
	Tags []string

	// Body is the raw note body (property block removed, unconverted).
	Body string
}

// IsArticle reports whether the page gets one output file per slug rather
// than a section index file.
func (p *Page) IsArticle() bool {
	return p.Type == "post" || p.Type == "blog"
}
