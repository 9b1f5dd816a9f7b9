package validation

import (
	"errors"
	"fmt"

	"custodia/internal/repositories"
)

var (
	ErrInvalidAPIKey      = errors.New("invalid API key")
	ErrWalletLimitReached = errors.New("wallet limit reached")
)

// WalletValidator rejects wallet-creation requests.
type WalletValidator interface {
	Validate(apiKey string) error
}

type APIKeyValidator struct {
	Users repositories.UserRepository
}

func (v APIKeyValidator) Validate(apiKey string) error {
	known, err := v.Users.HasAPIKey(apiKey)
	if err != nil {
		return fmt.Errorf("failed to check api key: %w", err)
	}
	if !known {
		return ErrInvalidAPIKey
	}
	return nil
}

type WalletLimitValidator struct {
	Limit   int
	Wallets repositories.WalletRepository
}

func (v WalletLimitValidator) Validate(apiKey string) error {
	if v.Limit <= 0 {
		return nil
	}
	count, err := v.Wallets.GetWalletCount(apiKey)
	if err != nil {
		return fmt.Errorf("failed to count wallets: %w", err)
	}
	if count >= v.Limit {
		return fmt.Errorf("%w: you already have %d wallets", ErrWalletLimitReached, v.Limit)
	}
	return nil
}
