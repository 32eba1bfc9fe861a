package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheetName = "Entries"

// WriteXLSX writes the statement as a single-sheet workbook.
func WriteXLSX(w io.Writer, st *Statement) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	for idx := range st.Entries {
		e := &st.Entries[idx]
		r := idx + 2
		amount, _ := e.Amount.Float64()

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), e.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", r), e.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", r), e.Month)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", r), e.Year)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", r), string(e.Type))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", r), string(e.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", r), amount)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", r), e.RegisteredAt.Format("2006-01-02"))
	}

	r := len(st.Entries) + 3
	for _, total := range []struct {
		label string
		value string
	}{
		{"Total income", st.Income.StringFixed(2)},
		{"Total expense", st.Expense.StringFixed(2)},
		{"Balance", st.Balance.StringFixed(2)},
	} {
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", r), total.label)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", r), total.value)
		r++
	}

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "D", 8)
	f.SetColWidth(sheetName, "E", "F", 12)
	f.SetColWidth(sheetName, "G", "G", 14)
	f.SetColWidth(sheetName, "H", "H", 12)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
