package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

const ContentTypeCSV = "text/csv; charset=utf-8"

// WriteCSV writes one row per entry followed by the three totals.
func WriteCSV(w io.Writer, st *Statement) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range st.Entries {
		if err := cw.Write(row(&st.Entries[i])); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	totals := [][]string{
		{"", "Total income", "", "", "", "", st.Income.StringFixed(2), ""},
		{"", "Total expense", "", "", "", "", st.Expense.StringFixed(2), ""},
		{"", "Balance", "", "", "", "", st.Balance.StringFixed(2), ""},
	}
	if err := cw.WriteAll(totals); err != nil {
		return fmt.Errorf("write csv totals: %w", err)
	}
	return nil
}
