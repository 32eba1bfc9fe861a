package models

import "time"

// EntryType tells whether an entry adds to or subtracts from the balance.
type EntryType string

const (
	EntryIncome  EntryType = "INCOME"
	EntryExpense EntryType = "EXPENSE"
)

// Valid reports whether t is a known entry type.
func (t EntryType) Valid() bool {
	return t == EntryIncome || t == EntryExpense
}

// EntryStatus is the lifecycle tag of an entry.
type EntryStatus string

const (
	StatusPending   EntryStatus = "PENDING"
	StatusSettled   EntryStatus = "SETTLED"
	StatusCancelled EntryStatus = "CANCELLED"
)

func (s EntryStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSettled, StatusCancelled:
		return true
	}
	return false
}

// ParseEntryType and ParseEntryStatus accept the upper-case wire names only.
func ParseEntryType(s string) (EntryType, bool) {
	t := EntryType(s)
	return t, t.Valid()
}

func ParseEntryStatus(s string) (EntryStatus, bool) {
	st := EntryStatus(s)
	return st, st.Valid()
}

// Entry is a single income or expense record owned by an account.
type Entry struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Description  string          `gorm:"size:255;not null" json:"description"`
	Month        int             `gorm:"index;not null;check:month_valid,month >= 1 AND month <= 12" json:"month"`
	Year         int             `gorm:"index;not null" json:"year"`
	Amount       Money           `gorm:"not null" json:"amount"`
	Type         EntryType       `gorm:"size:16;index;not null" json:"type"`
	Status       EntryStatus     `gorm:"size:16;index;not null;default:PENDING" json:"status"`
	AccountID    uint            `gorm:"index;not null" json:"user"`
	RegisteredAt time.Time       `json:"registered_at"`
	CreatedAt    time.Time       `json:"-"`
	UpdatedAt    time.Time       `json:"-"`

	Account *Account `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// EntryFilter selects entries by exact match. Zero-valued fields match anything.
type EntryFilter struct {
	Description string
	Month       int
	Year        int
	AccountID   uint
}
