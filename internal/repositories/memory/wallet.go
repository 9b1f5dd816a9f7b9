// Package memory provides mutex-guarded in-memory implementations of the
// repository contracts. They back tests and single-process deployments and
// honor the same semantics as the Postgres implementations.
package memory

import (
	"sync"

	"custodia/internal/models"
	"custodia/internal/repositories"
)

type WalletRepository struct {
	mu      sync.RWMutex
	wallets map[string]models.Wallet
	owners  map[string]string
}

func NewWalletRepository() *WalletRepository {
	return &WalletRepository{
		wallets: make(map[string]models.Wallet),
		owners:  make(map[string]string),
	}
}

func (r *WalletRepository) AddWallet(wallet *models.Wallet, apiKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.wallets[wallet.Address]; ok {
		return repositories.ErrDuplicateWallet
	}

	stored := *wallet
	stored.APIKey = apiKey
	r.wallets[wallet.Address] = stored
	r.owners[wallet.Address] = apiKey
	return nil
}

func (r *WalletRepository) GetWallet(address string) (*models.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wallet, ok := r.wallets[address]
	if !ok {
		return nil, repositories.ErrWalletNotFound
	}
	copied := wallet
	return &copied, nil
}

func (r *WalletRepository) UpdateWallet(wallet *models.Wallet, address string) error {
	if wallet.Address != address {
		return repositories.ErrAddressMismatch
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.wallets[address]
	if !ok {
		return repositories.ErrWalletNotFound
	}

	existing.Balance = wallet.Balance
	existing.Currency = wallet.Currency
	r.wallets[address] = existing
	return nil
}

func (r *WalletRepository) HasWallet(address string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.wallets[address]
	return ok, nil
}

func (r *WalletRepository) IsWalletOwner(address, apiKey string) (bool, error) {
	owner, err := r.GetWalletOwner(address)
	if err != nil {
		return false, err
	}
	return owner == apiKey, nil
}

func (r *WalletRepository) GetWalletOwner(address string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owner, ok := r.owners[address]
	if !ok {
		return "", repositories.ErrWalletNotFound
	}
	return owner, nil
}

func (r *WalletRepository) GetWalletCount(apiKey string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, owner := range r.owners {
		if owner == apiKey {
			count++
		}
	}
	return count, nil
}
