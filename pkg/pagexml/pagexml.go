// Package pagexml implements parsing of PAGE XML documents, the
// XML-based standard format used by Transkribus and other transcription
// platforms to describe the layout and text content of a document page.
//
// This package provides:
//
// - An object model for the parts of a PAGE document relevant to text auditing
// - A namespace-aware parser that tolerates unusual character encodings
// - Lookup of the page-level image metadata
//
// The package deliberately models a subset of the PAGE schema: the Page
// element with its image attributes, the document Metadata block, and
// every TextLine element regardless of how deeply regions are nested.
// Layout geometry (Coords, Baseline) is not retained.
//
// Key Types:
//
// - Document: top-level structure for one parsed PAGE file
// - Page: the single Page element with its image attributes
// - TextLine: one line of transcribed text with its Unicode content
// - Metadata: the document Metadata block
//
// Main Function:
//
// - Parse: parses raw PAGE XML data into the object model
package pagexml
