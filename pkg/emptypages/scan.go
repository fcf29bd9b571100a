package emptypages

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gardar/pagescan/pkg/pagexml"
)

// EmptyPage is one report record for a page without transcribed text
type EmptyPage struct {
	Collection    string // Collection directory name
	ImageFilename string // Source image filename from the page metadata
	XMLFilename   string // Page description filename
}

// IsPageEmpty reports whether a PAGE XML file contains any transcribed
// text.
//
// A page is empty when it has no text lines at all, or when no text
// line carries non-whitespace Unicode content. A file that cannot be
// read or parsed is treated as non-empty, so corrupt pages are never
// reported as empty; the failure is logged as a warning instead.
func IsPageEmpty(xmlPath string, config ScanConfig) bool {
	data, err := os.ReadFile(xmlPath)
	if err != nil {
		warnf(config, "  Warning: could not read %s: %v\n", filepath.Base(xmlPath), err)
		return false
	}

	doc, err := pagexml.Parse(data)
	if err != nil {
		warnf(config, "  Warning: could not parse %s: %v\n", filepath.Base(xmlPath), err)
		return false
	}

	// No text lines at all means an empty page.
	if len(doc.Lines) == 0 {
		return true
	}

	for _, line := range doc.Lines {
		if line.HasText() {
			return false
		}
	}
	return true
}

// ImageFilename extracts the source image filename from a PAGE XML
// file's metadata. It never fails: when the Page element or its
// imageFilename attribute is missing, or the file cannot be parsed,
// the XML filename without its extension is returned instead.
func ImageFilename(xmlPath string) string {
	stem := strings.TrimSuffix(filepath.Base(xmlPath), filepath.Ext(xmlPath))

	data, err := os.ReadFile(xmlPath)
	if err != nil {
		return stem
	}
	doc, err := pagexml.Parse(data)
	if err != nil {
		return stem
	}
	if doc.Page.ImageFilename != "" {
		return doc.Page.ImageFilename
	}
	return stem
}

// ProcessCollection scans every page description file in a collection
// and returns the records for its empty pages, in filename order.
func ProcessCollection(c Collection, config ScanConfig) []EmptyPage {
	xmlFiles := listPageFiles(c.Path, config)

	logf(config, "\n  Processing collection: %s\n", c.Name)
	logf(config, "  Found %d XML files\n", len(xmlFiles))

	var empty []EmptyPage
	for i, xmlFile := range xmlFiles {
		if (i+1)%10 == 0 {
			logf(config, "    Processed %d/%d files\r", i+1, len(xmlFiles))
		}
		if IsPageEmpty(xmlFile, config) {
			empty = append(empty, EmptyPage{
				Collection:    c.Name,
				ImageFilename: ImageFilename(xmlFile),
				XMLFilename:   filepath.Base(xmlFile),
			})
		}
	}

	logf(config, "    Processed %d/%d files    \n", len(xmlFiles), len(xmlFiles))
	logf(config, "  Found %d empty page(s) in %s\n", len(empty), c.Name)
	return empty
}

// Run executes the full empty page detection process over basePath,
// returning one record per empty page in collection order, then
// filename order within each collection. Per-file failures are
// absorbed; only a missing or invalid base path is an error.
func Run(basePath string, config ScanConfig) ([]EmptyPage, error) {
	logf(config, "=== Empty Page Detection Tool ===\n\n")

	collections, err := FindCollections(basePath, config)
	if err != nil {
		return nil, err
	}

	if len(collections) == 0 {
		logf(config, "No collections found. Please check the directory structure.\n")
		logf(config, "Expected structure: base_path/Collection_Name/%s/*%s\n", config.PageDirName, config.PageExt)
		return nil, nil
	}

	logf(config, "Found %d collection(s):\n", len(collections))
	for _, c := range collections {
		logf(config, "  - %s\n", c.Name)
	}

	var emptyPages []EmptyPage
	for _, c := range collections {
		emptyPages = append(emptyPages, ProcessCollection(c, config)...)
	}

	logf(config, "\n=== Summary ===\n")
	logf(config, "Total empty pages found: %d\n", len(emptyPages))
	logf(config, "Collections processed: %d\n", len(collections))

	return emptyPages, nil
}
