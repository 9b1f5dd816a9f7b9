// Package wallet provides wallet creation and presentation views. Balance
// mutation is owned by the transaction service; this package only reads
// balances and converts them for display.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"log"

	"custodia/internal/config"
	"custodia/internal/converter"
	"custodia/internal/models"
	"custodia/internal/repositories"
	"custodia/internal/validation"

	"github.com/google/uuid"
)

type Service interface {
	CreateWallet(ctx context.Context, apiKey string) (*View, error)
	GetWallet(ctx context.Context, apiKey, address string) (*View, error)
}

type service struct {
	wallets    repositories.WalletRepository
	conv       converter.Converter
	cache      Cache
	cfg        config.SystemConfig
	validators []validation.WalletValidator
}

// NewService creates a new wallet service.
func NewService(
	wallets repositories.WalletRepository,
	conv converter.Converter,
	cache Cache,
	cfg config.SystemConfig,
	validators ...validation.WalletValidator,
) Service {
	if wallets == nil {
		panic("wallet repository is required")
	}
	if conv == nil {
		panic("currency converter is required")
	}
	if cache == nil {
		cache = NoopCache{}
	}

	return &service{
		wallets:    wallets,
		conv:       conv,
		cache:      cache,
		cfg:        cfg,
		validators: validators,
	}
}

func (s *service) CreateWallet(ctx context.Context, apiKey string) (*View, error) {
	for _, v := range s.validators {
		if err := v.Validate(apiKey); err != nil {
			return nil, err
		}
	}

	wallet := &models.Wallet{
		Address:  uuid.NewString(),
		Balance:  s.cfg.InitialBalance,
		Currency: models.CurrencyBTC,
	}
	if err := s.wallets.AddWallet(wallet, apiKey); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	if err := s.cache.CacheWallet(ctx, wallet); err != nil {
		log.Printf("failed to cache wallet %s: %v", wallet.Address, err)
	}
	return s.view(wallet)
}

func (s *service) GetWallet(ctx context.Context, apiKey, address string) (*View, error) {
	owner, err := s.wallets.GetWalletOwner(address)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if owner != apiKey {
		return nil, ErrUnauthorized
	}

	if cached, found, err := s.cache.GetWallet(ctx, address); err == nil && found {
		return s.view(cached)
	}

	wallet, err := s.wallets.GetWallet(address)
	if err != nil {
		return nil, err
	}
	if err := s.cache.CacheWallet(ctx, wallet); err != nil {
		log.Printf("failed to cache wallet %s: %v", address, err)
	}
	return s.view(wallet)
}

func (s *service) view(wallet *models.Wallet) (*View, error) {
	usd, err := s.conv.ToUSD(wallet.Balance)
	if err != nil {
		return nil, fmt.Errorf("failed to convert balance: %w", err)
	}
	return &View{
		Address:    wallet.Address,
		BalanceBTC: wallet.Balance,
		BalanceUSD: usd,
	}, nil
}
