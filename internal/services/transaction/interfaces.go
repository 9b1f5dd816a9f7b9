package transaction

import (
	"context"

	"custodia/internal/models"
)

// Service is the transaction interactor: the sole authority for mutating
// wallet balances via transfers and for producing the ledger trail.
type Service interface {
	// Transfer moves amount from the source wallet to the destination
	// wallet, taking the configured fee on the deposit side.
	Transfer(ctx context.Context, apiKey, sourceAddress, destinationAddress string, amount float64) error

	// GetTransactions returns the ledger entries indexed under the wallet.
	// The caller must own the wallet.
	GetTransactions(ctx context.Context, walletAddress, apiKey string) ([]models.TransactionEntry, error)

	// GetUserTransactions returns all entries indexed under the API key.
	// An unknown key yields an empty slice, not an error.
	GetUserTransactions(ctx context.Context, apiKey string) ([]models.TransactionEntry, error)
}

// CacheInvalidator drops cached wallet reads after a balance mutation.
type CacheInvalidator interface {
	InvalidateWallet(ctx context.Context, addresses ...string) error
}

// NoopInvalidator is used when no cache is wired.
type NoopInvalidator struct{}

func (NoopInvalidator) InvalidateWallet(context.Context, ...string) error { return nil }
