package wallet

import (
	"context"

	"custodia/internal/models"
)

// View is the presentation form of a wallet: balance in the native unit
// plus the converted display-currency balance.
type View struct {
	Address    string  `json:"address"`
	BalanceBTC float64 `json:"balance_btc"`
	BalanceUSD float64 `json:"balance_usd"`
}

// Cache is the wallet read cache consumed by the service.
type Cache interface {
	GetWallet(ctx context.Context, address string) (*models.Wallet, bool, error)
	CacheWallet(ctx context.Context, wallet *models.Wallet) error
}

// NoopCache is used when no cache is wired.
type NoopCache struct{}

func (NoopCache) GetWallet(context.Context, string) (*models.Wallet, bool, error) {
	return nil, false, nil
}

func (NoopCache) CacheWallet(context.Context, *models.Wallet) error { return nil }
