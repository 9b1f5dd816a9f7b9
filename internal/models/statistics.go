package models

import "time"

// Statistics is the single-row table of platform counters. Both counters
// are monotonically non-decreasing.
type Statistics struct {
	ID               uint    `gorm:"primarykey"`
	TransactionCount int64   `gorm:"not null;default:0"`
	PlatformProfit   float64 `gorm:"not null;default:0"`
	UpdatedAt        time.Time
}
