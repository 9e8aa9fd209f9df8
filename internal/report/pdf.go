package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	internal "github.com/pruthagwin123/expense-tracker/internal"
)

// Table geometry, in millimeters. Column widths and the 15mm margin match
// the layout the export consumers already expect.
const (
	pdfMargin     = 15.0
	pdfLineHeight = 8.0

	colWidthDate        = 35.0
	colWidthCategory    = 40.0
	colWidthDescription = 75.0
	colWidthAmount      = 30.0
)

const pdfDateLayout = "2006-01-02"

// RenderPDF lays out the records as a bordered table and returns the
// complete document bytes. Descriptions wrap inside their column and the
// wrapped line count sets the height of every cell in that row, so the four
// borders stay aligned. A row that does not fit in the remaining page space
// starts on a fresh page before any of its cells are drawn; a row is never
// split across pages. An empty record set still yields a valid document
// with the table header and a zero total.
func RenderPDF(displayName string, records []ExpenseRecord, periodLabel string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, pdfMargin)
	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.CellFormat(0, 10, fmt.Sprintf("Expense Report - %s - %s", displayName, periodLabel), "", 1, "", false, 0, "")
	doc.Ln(5)

	doc.SetFont("Arial", "", 12)

	drawTableHeader(doc)

	_, pageHeight := doc.GetPageSize()
	breakAt := pageHeight - pdfMargin

	for _, rec := range records {
		lines := descriptionLines(doc, rec.Description)
		rowHeight := pdfLineHeight * float64(len(lines))

		// Measure before drawing: the whole row moves to the next page
		// when it does not fit above the bottom margin.
		if doc.GetY()+rowHeight > breakAt {
			doc.AddPage()
			drawTableHeader(doc)
		}

		doc.CellFormat(colWidthDate, rowHeight, rec.Date.Format(pdfDateLayout), "1", 0, "", false, 0, "")
		doc.CellFormat(colWidthCategory, rowHeight, rec.DisplayCategory(), "1", 0, "", false, 0, "")

		x, y := doc.GetXY()
		doc.MultiCell(colWidthDescription, pdfLineHeight, rec.Description, "1", "L", false)
		doc.SetXY(x+colWidthDescription, y)

		doc.CellFormat(colWidthAmount, rowHeight, rec.Amount.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	doc.Ln(5)
	doc.SetFont("Arial", "B", 12)
	doc.CellFormat(0, 8, fmt.Sprintf("Total: %s", TotalAmount(records).StringFixed(2)), "", 1, "", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, internal.NewRenderError("failed to render pdf report", err)
	}
	return buf.Bytes(), nil
}

func drawTableHeader(doc *fpdf.Fpdf) {
	doc.CellFormat(colWidthDate, pdfLineHeight, "Date", "1", 0, "C", false, 0, "")
	doc.CellFormat(colWidthCategory, pdfLineHeight, "Category", "1", 0, "C", false, 0, "")
	doc.CellFormat(colWidthDescription, pdfLineHeight, "Description", "1", 0, "C", false, 0, "")
	doc.CellFormat(colWidthAmount, pdfLineHeight, "Amount", "1", 1, "C", false, 0, "")
}

// descriptionLines wraps the description to the description column width.
// An empty description still occupies one line so the row has a visible box.
func descriptionLines(doc *fpdf.Fpdf, description string) []string {
	lines := doc.SplitText(description, colWidthDescription)
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
