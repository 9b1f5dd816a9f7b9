package transaction

import (
	"context"
	"errors"
	"fmt"
	"log"

	"custodia/internal/config"
	"custodia/internal/models"
	"custodia/internal/repositories"
)

type service struct {
	wallets repositories.WalletRepository
	ledger  repositories.TransactionRepository
	uow     repositories.UnitOfWork
	cfg     config.SystemConfig
	cache   CacheInvalidator
	locks   addressLocks
}

// NewService creates a new transaction service.
func NewService(
	wallets repositories.WalletRepository,
	ledger repositories.TransactionRepository,
	uow repositories.UnitOfWork,
	cfg config.SystemConfig,
	cache CacheInvalidator,
) Service {
	if wallets == nil {
		panic("wallet repository is required")
	}
	if ledger == nil {
		panic("transaction repository is required")
	}
	if uow == nil {
		panic("unit of work is required")
	}
	if cache == nil {
		cache = NoopInvalidator{}
	}

	return &service{
		wallets: wallets,
		ledger:  ledger,
		uow:     uow,
		cfg:     cfg,
		cache:   cache,
	}
}

func (s *service) Transfer(ctx context.Context, apiKey, sourceAddress, destinationAddress string, amount float64) error {
	unlock := s.locks.lockAll(sourceAddress, destinationAddress)
	defer unlock()

	err := s.uow.Execute(ctx, func(st repositories.Stores) error {
		source, err := st.Wallets.GetWallet(sourceAddress)
		if err != nil {
			return foldNotFound(err)
		}
		destination, err := st.Wallets.GetWallet(destinationAddress)
		if err != nil {
			return foldNotFound(err)
		}
		if source.APIKey != apiKey {
			return ErrUnauthorized
		}
		if amount < 0 {
			return ErrInvalidAmount
		}
		if source.Balance < amount {
			return ErrInsufficientFunds
		}

		deposit, fee := splitAmount(amount, s.feePercentFor(apiKey, destination))

		source.Balance -= amount
		if err := st.Wallets.UpdateWallet(source, sourceAddress); err != nil {
			return fmt.Errorf("failed to debit source wallet: %w", err)
		}
		destination.Balance += deposit
		if err := st.Wallets.UpdateWallet(destination, destinationAddress); err != nil {
			return fmt.Errorf("failed to credit destination wallet: %w", err)
		}

		write := newLedgerWrite(sourceAddress, destinationAddress, deposit, fee, s.cfg.SystemWalletAddress)
		if err := st.Transactions.AddTransaction(&write.Main, sourceAddress); err != nil {
			return err
		}
		if err := st.Transactions.AddTransaction(&write.Main, destinationAddress); err != nil {
			return err
		}
		if err := st.Statistics.AddTransaction(); err != nil {
			return err
		}

		if write.Fee != nil {
			if err := st.Transactions.AddTransaction(write.Fee, sourceAddress); err != nil {
				return err
			}
			if err := st.Statistics.AddTransaction(); err != nil {
				return err
			}
			if err := st.Statistics.AddPlatformProfit(write.Fee.Amount); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.cache.InvalidateWallet(ctx, sourceAddress, destinationAddress); err != nil {
		log.Printf("failed to invalidate wallet cache: %v", err)
	}
	return nil
}

func (s *service) GetTransactions(ctx context.Context, walletAddress, apiKey string) ([]models.TransactionEntry, error) {
	owner, err := s.wallets.GetWalletOwner(walletAddress)
	if err != nil {
		return nil, foldNotFound(err)
	}
	if owner != apiKey {
		return nil, ErrUnauthorized
	}
	return s.ledger.GetTransactions(walletAddress)
}

func (s *service) GetUserTransactions(ctx context.Context, apiKey string) ([]models.TransactionEntry, error) {
	return s.ledger.GetUserTransactions(apiKey)
}

// feePercentFor selects the fee tier: transfers between two wallets of one
// user get the same-user percentage, everything else the cross-user one.
func (s *service) feePercentFor(apiKey string, destination *models.Wallet) float64 {
	if destination.APIKey == apiKey {
		return s.cfg.SameUserFeePercent
	}
	return s.cfg.CrossUserFeePercent
}

// foldNotFound maps a missing wallet onto the unauthorized signal.
func foldNotFound(err error) error {
	if errors.Is(err, repositories.ErrWalletNotFound) {
		return ErrUnauthorized
	}
	return err
}
