package repositories

import (
	"fmt"

	"custodia/internal/models"

	"gorm.io/gorm"
)

type transactionRepository struct {
	db      *gorm.DB
	wallets WalletRepository
}

// NewTransactionRepository creates a Postgres-backed ledger. The wallet
// repository is consulted at write time to resolve the owning user of the
// indexed wallet.
func NewTransactionRepository(db *gorm.DB, wallets WalletRepository) TransactionRepository {
	return &transactionRepository{db: db, wallets: wallets}
}

func (r *transactionRepository) AddTransaction(entry *models.TransactionEntry, walletAddress string) error {
	owner, err := r.wallets.GetWalletOwner(walletAddress)
	if err != nil {
		return fmt.Errorf("failed to resolve wallet owner: %w", err)
	}

	row := models.TransactionEntry{
		EntryID:            entry.EntryID,
		AssociatedWallet:   walletAddress,
		AssociatedAPIKey:   owner,
		SourceAddress:      entry.SourceAddress,
		DestinationAddress: entry.DestinationAddress,
		Amount:             entry.Amount,
		Timestamp:          entry.Timestamp,
	}
	if err := r.db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetTransactions(walletAddress string) ([]models.TransactionEntry, error) {
	var entries []models.TransactionEntry
	err := r.db.Where("associated_wallet = ?", walletAddress).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet transactions: %w", err)
	}
	return entries, nil
}

func (r *transactionRepository) GetUserTransactions(apiKey string) ([]models.TransactionEntry, error) {
	var entries []models.TransactionEntry
	err := r.db.Where("associated_api_key = ?", apiKey).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user transactions: %w", err)
	}
	return dedupeByEntryID(entries), nil
}

// dedupeByEntryID collapses the per-wallet index rows of one logical entry.
// A user owning both sides of a transfer sees the entry once.
func dedupeByEntryID(entries []models.TransactionEntry) []models.TransactionEntry {
	seen := make(map[string]struct{}, len(entries))
	out := entries[:0]
	for _, e := range entries {
		if _, ok := seen[e.EntryID]; ok {
			continue
		}
		seen[e.EntryID] = struct{}{}
		out = append(out, e)
	}
	return out
}
