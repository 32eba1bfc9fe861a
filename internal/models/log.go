package models

import "time"

// AuditLog records every API request made against the service.
type AuditLog struct {
	ID         uint      `gorm:"primaryKey"`
	AccountID  *uint     `gorm:"index"`
	RequestID  string    `gorm:"size:64;index"`
	Method     string    `gorm:"size:16"`
	Path       string    `gorm:"size:255"`
	StatusCode int
	IP         string    `gorm:"size:64"`
	UserAgent  string    `gorm:"size:255"`
	CreatedAt  time.Time `gorm:"index"`
}
