package pagexml

import "strings"

// Namespace is the PAGE content schema namespace. Elements outside this
// namespace are ignored during parsing.
const Namespace = "http://schema.primaresearch.org/PAGE/gts/pagecontent/2013-07-15"

// Document represents one parsed PAGE XML file
type Document struct {
	Metadata Metadata   // Document metadata block
	Page     Page       // The Page element
	Lines    []TextLine // All TextLine elements, any depth, in document order
}

// Metadata holds the PAGE Metadata block
// Transkribus exports always carry one, but it is optional here
type Metadata struct {
	Creator    string // Producing software or user
	Created    string // Creation timestamp, as written in the document
	LastChange string // Last modification timestamp, as written in the document
}

// Page is the page-level element carrying the source image attributes
type Page struct {
	ImageFilename string // Source image filename
	ImageWidth    int    // Image width in pixels
	ImageHeight   int    // Image height in pixels
}

// TextLine is one line of transcribed text
// Corresponds to a PAGE TextLine element at any nesting depth
type TextLine struct {
	ID      string  // Unique identifier
	Unicode *string // First Unicode descendant's text, nil when the line carries none
}

// HasText reports whether the line carries any non-whitespace
// transcribed content. Only the first Unicode descendant counts;
// a line whose leading Unicode node is blank has no text even if a
// later node does.
func (l TextLine) HasText() bool {
	return l.Unicode != nil && strings.TrimSpace(*l.Unicode) != ""
}
