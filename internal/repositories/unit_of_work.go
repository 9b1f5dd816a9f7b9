package repositories

import "context"

// Stores bundles the repositories bound to one transactional scope.
type Stores struct {
	Wallets      WalletRepository
	Transactions TransactionRepository
	Statistics   StatisticsRepository
}

// UnitOfWork runs a function against a single transactional boundary
// spanning wallets, ledger and statistics. If fn returns an error the
// whole unit is rolled back.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(Stores) error) error
}
