package repositories

import (
	"context"

	"gorm.io/gorm"
)

type gormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a UnitOfWork backed by a database transaction. The
// stores passed to fn are bound to that transaction, so wallet mutations,
// ledger appends and statistics updates commit or roll back together.
func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Execute(ctx context.Context, fn func(Stores) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wallets := NewWalletRepository(tx)
		return fn(Stores{
			Wallets:      wallets,
			Transactions: NewTransactionRepository(tx, wallets),
			Statistics:   NewStatisticsRepository(tx),
		})
	})
}
