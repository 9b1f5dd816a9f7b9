package memory

import (
	"fmt"
	"sync"

	"custodia/internal/models"
	"custodia/internal/repositories"
)

type TransactionRepository struct {
	mu        sync.RWMutex
	wallets   repositories.WalletRepository
	byAddress map[string][]*models.TransactionEntry
	byAPIKey  map[string][]*models.TransactionEntry
}

// NewTransactionRepository creates an in-memory ledger. The same entry
// pointer is shared across the wallet and user indices, so entry identity
// is stable regardless of which side it is read from.
func NewTransactionRepository(wallets repositories.WalletRepository) *TransactionRepository {
	return &TransactionRepository{
		wallets:   wallets,
		byAddress: make(map[string][]*models.TransactionEntry),
		byAPIKey:  make(map[string][]*models.TransactionEntry),
	}
}

func (r *TransactionRepository) AddTransaction(entry *models.TransactionEntry, walletAddress string) error {
	owner, err := r.wallets.GetWalletOwner(walletAddress)
	if err != nil {
		return fmt.Errorf("failed to resolve wallet owner: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byAddress[walletAddress] = append(r.byAddress[walletAddress], entry)
	r.byAPIKey[owner] = append(r.byAPIKey[owner], entry)
	return nil
}

func (r *TransactionRepository) GetTransactions(walletAddress string) ([]models.TransactionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return snapshot(r.byAddress[walletAddress]), nil
}

func (r *TransactionRepository) GetUserTransactions(apiKey string) ([]models.TransactionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// A user owning both sides of a transfer has the shared entry in their
	// index once per wallet; collapse it to one.
	seen := make(map[string]struct{})
	out := make([]models.TransactionEntry, 0, len(r.byAPIKey[apiKey]))
	for _, e := range r.byAPIKey[apiKey] {
		if _, ok := seen[e.EntryID]; ok {
			continue
		}
		seen[e.EntryID] = struct{}{}
		out = append(out, *e)
	}
	return out, nil
}

func snapshot(entries []*models.TransactionEntry) []models.TransactionEntry {
	out := make([]models.TransactionEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, *e)
	}
	return out
}
