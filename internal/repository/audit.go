package repository

import (
	"context"
	"fmt"

	"debt-control/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Record(ctx context.Context, l *models.AuditLog) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("record audit log: %w", err)
	}
	return nil
}

// ListByAccount returns one page of an account's audit trail, newest first,
// together with the total row count.
func (r *AuditRepository) ListByAccount(ctx context.Context, accountID uint, page, size int) ([]models.AuditLog, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.AuditLog{}).Where("account_id = ?", accountID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}

	var logs []models.AuditLog
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}
	return logs, total, nil
}
