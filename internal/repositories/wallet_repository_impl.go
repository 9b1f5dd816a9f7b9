package repositories

import (
	"errors"
	"fmt"

	"custodia/internal/models"

	"gorm.io/gorm"
)

type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a Postgres-backed wallet repository.
func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) AddWallet(wallet *models.Wallet, apiKey string) error {
	wallet.APIKey = apiKey
	if err := r.db.Create(wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateWallet
		}
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

func (r *walletRepository) GetWallet(address string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.Where("address = ?", address).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) UpdateWallet(wallet *models.Wallet, address string) error {
	if wallet.Address != address {
		return ErrAddressMismatch
	}

	result := r.db.Model(&models.Wallet{}).
		Where("address = ?", address).
		Updates(map[string]interface{}{
			"balance":  wallet.Balance,
			"currency": wallet.Currency,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

func (r *walletRepository) HasWallet(address string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Wallet{}).Where("address = ?", address).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check wallet: %w", err)
	}
	return count > 0, nil
}

func (r *walletRepository) IsWalletOwner(address, apiKey string) (bool, error) {
	owner, err := r.GetWalletOwner(address)
	if err != nil {
		return false, err
	}
	return owner == apiKey, nil
}

func (r *walletRepository) GetWalletOwner(address string) (string, error) {
	wallet, err := r.GetWallet(address)
	if err != nil {
		return "", err
	}
	return wallet.APIKey, nil
}

func (r *walletRepository) GetWalletCount(apiKey string) (int, error) {
	var count int64
	if err := r.db.Model(&models.Wallet{}).Where("api_key = ?", apiKey).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count wallets: %w", err)
	}
	return int(count), nil
}
