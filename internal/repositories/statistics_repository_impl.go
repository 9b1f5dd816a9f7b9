package repositories

import (
	"fmt"

	"custodia/internal/models"

	"gorm.io/gorm"
)

// statisticsRowID identifies the single counters row seeded by InitDB.
const statisticsRowID = 1

type statisticsRepository struct {
	db *gorm.DB
}

// NewStatisticsRepository creates a Postgres-backed statistics repository.
func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) AddTransaction() error {
	err := r.db.Model(&models.Statistics{}).
		Where("id = ?", statisticsRowID).
		UpdateColumn("transaction_count", gorm.Expr("transaction_count + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment transaction count: %w", err)
	}
	return nil
}

func (r *statisticsRepository) AddPlatformProfit(amount float64) error {
	err := r.db.Model(&models.Statistics{}).
		Where("id = ?", statisticsRowID).
		UpdateColumn("platform_profit", gorm.Expr("platform_profit + ?", amount)).Error
	if err != nil {
		return fmt.Errorf("failed to add platform profit: %w", err)
	}
	return nil
}

func (r *statisticsRepository) GetTransactions() (int64, error) {
	stats, err := r.load()
	if err != nil {
		return 0, err
	}
	return stats.TransactionCount, nil
}

func (r *statisticsRepository) GetPlatformProfit() (float64, error) {
	stats, err := r.load()
	if err != nil {
		return 0, err
	}
	return stats.PlatformProfit, nil
}

func (r *statisticsRepository) load() (*models.Statistics, error) {
	var stats models.Statistics
	if err := r.db.First(&stats, statisticsRowID).Error; err != nil {
		return nil, fmt.Errorf("failed to load statistics: %w", err)
	}
	return &stats, nil
}
