package repository

import (
	"context"
	"fmt"

	"debt-control/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type EntryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

func (r *EntryRepository) Create(ctx context.Context, e *models.Entry) error {
	if err := r.db.WithContext(ctx).Omit("Account").Create(e).Error; err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	return nil
}

func (r *EntryRepository) Save(ctx context.Context, e *models.Entry) error {
	if err := r.db.WithContext(ctx).Omit("Account").Save(e).Error; err != nil {
		return fmt.Errorf("save entry: %w", err)
	}
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, e *models.Entry) error {
	if err := r.db.WithContext(ctx).Delete(&models.Entry{}, e.ID).Error; err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func (r *EntryRepository) FindByID(ctx context.Context, id uint) (*models.Entry, error) {
	var e models.Entry
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

// FindAll returns the entries matching every non-zero field of f.
func (r *EntryRepository) FindAll(ctx context.Context, f models.EntryFilter) ([]models.Entry, error) {
	q := r.db.WithContext(ctx).Model(&models.Entry{})
	if f.Description != "" {
		q = q.Where("description = ?", f.Description)
	}
	if f.Month != 0 {
		q = q.Where("month = ?", f.Month)
	}
	if f.Year != 0 {
		q = q.Where("year = ?", f.Year)
	}
	if f.AccountID != 0 {
		q = q.Where("account_id = ?", f.AccountID)
	}

	var entries []models.Entry
	if err := q.Order("year ASC, month ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}
	return entries, nil
}

// SumByType adds up the amounts of one account's entries of type t.
// Rows are summed as decimals rather than with SQL SUM, which would turn
// the sqlite TEXT amounts into floats.
func (r *EntryRepository) SumByType(ctx context.Context, accountID uint, t models.EntryType) (decimal.Decimal, error) {
	rows, err := r.db.WithContext(ctx).Model(&models.Entry{}).
		Select("amount").
		Where("account_id = ? AND type = ?", accountID, t).
		Rows()
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum %s entries: %w", t, err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var amount decimal.Decimal
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, fmt.Errorf("scan amount: %w", err)
		}
		total = total.Add(amount)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("sum %s entries: %w", t, err)
	}
	return total, nil
}
