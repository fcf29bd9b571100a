// Package report renders empty page detection results as a tabular
// report.
//
// Three formats are supported, selected by the output path's extension:
// a spreadsheet workbook (.xlsx, the default), comma-separated values
// (.csv), and a PDF table (.pdf). All formats share the same fixed
// three-column layout: Collection, Image Filename, XML Filename.
//
// When the spreadsheet cannot be written the report degrades to CSV at
// the same path with the extension swapped, so a run never loses its
// results to a formatting failure.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gardar/pagescan/pkg/emptypages"
)

// Header is the fixed column order of every report format.
var Header = []string{"Collection", "Image Filename", "XML Filename"}

// Write renders the records to outputPath in the format matching its
// extension, defaulting to a spreadsheet workbook. It returns the path
// actually written, which differs from outputPath only when spreadsheet
// output fails and the report degrades to CSV; that degradation is
// reported as a notice on logger, not as an error.
func Write(records []emptypages.EmptyPage, outputPath string, logger io.Writer) (string, error) {
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".csv":
		return outputPath, WriteCSV(records, outputPath)
	case ".pdf":
		return outputPath, WritePDF(records, outputPath)
	default:
		err := WriteXLSX(records, outputPath)
		if err == nil {
			return outputPath, nil
		}
		csvPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".csv"
		fmt.Fprintf(logger, "Note: spreadsheet output not available (%v), creating CSV instead\n", err)
		return csvPath, WriteCSV(records, csvPath)
	}
}
