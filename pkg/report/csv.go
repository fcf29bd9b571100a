package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gardar/pagescan/pkg/emptypages"
)

// WriteCSV writes the records as comma-separated values with the
// standard header row.
func WriteCSV(records []emptypages.EmptyPage, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}
	for _, rec := range records {
		if err := w.Write([]string{rec.Collection, rec.ImageFilename, rec.XMLFilename}); err != nil {
			return fmt.Errorf("writing record for %s: %w", rec.XMLFilename, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV file: %w", err)
	}
	return f.Close()
}
