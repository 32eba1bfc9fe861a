package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Amount limits: two decimal places and at most 14 integer digits, the
// precision of the DECIMAL(16,2) column.
const (
	MoneyScale         = 2
	MoneyIntegerDigits = 14
)

var moneyLimit = decimal.New(1, MoneyIntegerDigits)

// Money is a decimal amount column. sqlite would coerce a DECIMAL column to
// REAL, so there the value is kept as TEXT and read back digit for digit.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// Fits reports whether m can be stored without rounding.
func (m Money) Fits() bool {
	return m.Equal(m.Truncate(MoneyScale)) && m.Abs().LessThan(moneyLimit)
}

func (Money) GormDataType() string {
	return "decimal"
}

func (Money) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "TEXT"
	}
	return "DECIMAL(16,2)"
}
