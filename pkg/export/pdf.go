package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// StatementRow is one payment line of a fee statement.
type StatementRow struct {
	Date   string
	Method string
	Amount int
}

// Statement carries everything needed to render a fee statement.
type Statement struct {
	StudentName string
	StudentID   string
	Program     string
	Year        string
	FeesDue     int
	Currency    string
	Payments    []StatementRow
}

// FeeStatementPDF renders a student's outstanding balance and payment
// history as a printable PDF.
func FeeStatementPDF(st Statement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "FEE STATEMENT", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Student: %s (%s)", st.StudentName, st.StudentID), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Program: %s, Year %s", st.Program, st.Year), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Outstanding fees: %s %d", st.Currency, st.FeesDue), "", 1, "", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 10)
	widths := []float64{60, 60, 70}
	headers := []string{"Date", "Method", "Amount"}
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range st.Payments {
		pdf.CellFormat(widths[0], 7, row.Date, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[1], 7, row.Method, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[2], 7, st.Currency+" "+strconv.Itoa(row.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	if len(st.Payments) == 0 {
		pdf.CellFormat(widths[0]+widths[1]+widths[2], 7, "No payments recorded", "1", 1, "C", false, 0, "")
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
