package repositories

import "custodia/internal/models"

// TransactionRepository is the append-only ledger. AddTransaction indexes
// the entry under the wallet address and under the wallet's owning user,
// resolved through the wallet store at write time. No update or delete
// operation exists.
type TransactionRepository interface {
	AddTransaction(entry *models.TransactionEntry, walletAddress string) error
	GetTransactions(walletAddress string) ([]models.TransactionEntry, error)
	GetUserTransactions(apiKey string) ([]models.TransactionEntry, error)
}
