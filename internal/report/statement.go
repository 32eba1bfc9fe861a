// Package report renders an account statement (its entries plus income,
// expense and balance totals) as CSV, XLSX or PDF.
package report

import (
	"strconv"
	"time"

	"debt-control/internal/models"

	"github.com/shopspring/decimal"
)

// Statement is everything a rendered export shows.
type Statement struct {
	Account     models.Account
	Entries     []models.Entry
	Income      decimal.Decimal
	Expense     decimal.Decimal
	Balance     decimal.Decimal
	GeneratedAt time.Time
}

// NewStatement totals entries by type. Entries are rendered in the order given.
func NewStatement(account models.Account, entries []models.Entry, now time.Time) *Statement {
	st := &Statement{
		Account:     account,
		Entries:     entries,
		Income:      decimal.Zero,
		Expense:     decimal.Zero,
		GeneratedAt: now,
	}
	for i := range entries {
		switch entries[i].Type {
		case models.EntryIncome:
			st.Income = st.Income.Add(entries[i].Amount.Decimal)
		case models.EntryExpense:
			st.Expense = st.Expense.Add(entries[i].Amount.Decimal)
		}
	}
	st.Balance = st.Income.Sub(st.Expense)
	return st
}

// Filename builds a download name such as statement_3_20240131.xlsx.
func (st *Statement) Filename(ext string) string {
	return "statement_" + strconv.FormatUint(uint64(st.Account.ID), 10) + "_" +
		st.GeneratedAt.Format("20060102") + "." + ext
}

var header = []string{"ID", "Description", "Month", "Year", "Type", "Status", "Amount", "Registered"}

func row(e *models.Entry) []string {
	return []string{
		strconv.FormatUint(uint64(e.ID), 10),
		e.Description,
		strconv.Itoa(e.Month),
		strconv.Itoa(e.Year),
		string(e.Type),
		string(e.Status),
		e.Amount.StringFixed(2),
		e.RegisteredAt.Format("2006-01-02"),
	}
}
