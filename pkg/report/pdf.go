package report

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gardar/pagescan/pkg/emptypages"
)

// Column widths in mm for a landscape A4 page.
var pdfColWidths = [3]float64{60, 108, 108}

// WritePDF writes the records as a three-column table in a landscape
// PDF document.
func WritePDF(records []emptypages.EmptyPage, outputPath string) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(sheetName, false)
	pdf.AddPage()

	drawPDFHeader(pdf)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, rec := range records {
		// Repeat the header after an automatic page break.
		if pdf.GetY() > 190 {
			pdf.AddPage()
			drawPDFHeader(pdf)
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.CellFormat(pdfColWidths[0], 7, rec.Collection, "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfColWidths[1], 7, rec.ImageFilename, "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfColWidths[2], 7, rec.XMLFilename, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("saving PDF: %w", err)
	}
	return nil
}

func drawPDFHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(54, 96, 146)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range Header {
		pdf.CellFormat(pdfColWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}
