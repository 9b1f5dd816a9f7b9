// Package repositories provides the data access layer. It defines the store
// contracts consumed by the service layer and their GORM-backed
// implementations; mutex-guarded in-memory implementations live in the
// memory subpackage.
package repositories

import (
	"errors"

	"custodia/internal/models"
)

var (
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrDuplicateWallet   = errors.New("wallet already exists")
	ErrAddressMismatch   = errors.New("wallet address mismatch")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateAPIKey   = errors.New("api key already exists")
)

// WalletRepository defines wallet state and ownership operations. Reads
// reflect the most recently committed write within the process.
type WalletRepository interface {
	AddWallet(wallet *models.Wallet, apiKey string) error
	GetWallet(address string) (*models.Wallet, error)
	// UpdateWallet overwrites balance and currency for an existing address.
	// It fails with ErrWalletNotFound for unknown addresses and
	// ErrAddressMismatch when the entry's address differs from the given one.
	UpdateWallet(wallet *models.Wallet, address string) error
	HasWallet(address string) (bool, error)
	IsWalletOwner(address, apiKey string) (bool, error)
	GetWalletOwner(address string) (string, error)
	GetWalletCount(apiKey string) (int, error)
}
