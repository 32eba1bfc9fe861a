package report

import (
	"fmt"
	"io"
	"strconv"

	"debt-control/internal/models"

	"github.com/phpdave11/gofpdf"
)

const ContentTypePDF = "application/pdf"

const maxPDFRows = 500

// WritePDF renders an A4 statement: totals on top, then one table row per entry.
func WritePDF(w io.Writer, st *Statement) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Statement")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, tr("Account: "+st.Account.Name+" <"+st.Account.Email+">"))
	pdf.Ln(5)
	pdf.Cell(0, 6, "Generated: "+st.GeneratedAt.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := []float64{60, 60, 62}
	pdf.CellFormat(sumW[0], 10, "Income", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 10, "Expense", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 10, "Balance", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 10, st.Income.StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 10, st.Expense.StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 10, st.Balance.StringFixed(2), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	colW := []float64{16, 70, 22, 24, 26, 24}
	tableHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(colW[0], 8, "ID", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[1], 8, "DESCRIPTION", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colW[2], 8, "PERIOD", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[3], 8, "TYPE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[4], 8, "STATUS", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[5], 8, "AMOUNT", "1", 1, "R", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}
	tableHeader()

	for i := range st.Entries {
		if i >= maxPDFRows {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 8, "truncated (too many rows)", "1", 1, "C", false, 0, "")
			break
		}
		if pdf.GetY() > 270 {
			pdf.AddPage()
			tableHeader()
		}

		e := &st.Entries[i]
		amount := e.Amount.StringFixed(2)
		if e.Type == models.EntryExpense {
			amount = "-" + amount
		}
		pdf.CellFormat(colW[0], 8, strconv.FormatUint(uint64(e.ID), 10), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, tr(trimTo(e.Description, 40)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[2], 8, fmt.Sprintf("%02d/%d", e.Month, e.Year), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[3], 8, string(e.Type), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[4], 8, string(e.Status), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[5], 8, amount, "1", 1, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func trimTo(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
