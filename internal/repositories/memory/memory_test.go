package memory

import (
	"testing"

	"custodia/internal/models"
	"custodia/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletRepository(t *testing.T) {
	t.Run("add and get", func(t *testing.T) {
		repo := NewWalletRepository()
		err := repo.AddWallet(&models.Wallet{Address: "a", Balance: 1, Currency: models.CurrencyBTC}, "key-1")
		require.NoError(t, err)

		wallet, err := repo.GetWallet("a")
		require.NoError(t, err)
		assert.Equal(t, 1.0, wallet.Balance)
		assert.Equal(t, "key-1", wallet.APIKey)

		has, err := repo.HasWallet("a")
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("duplicate address rejected", func(t *testing.T) {
		repo := NewWalletRepository()
		require.NoError(t, repo.AddWallet(&models.Wallet{Address: "a"}, "key-1"))
		err := repo.AddWallet(&models.Wallet{Address: "a"}, "key-2")
		assert.ErrorIs(t, err, repositories.ErrDuplicateWallet)
	})

	t.Run("get unknown wallet", func(t *testing.T) {
		repo := NewWalletRepository()
		_, err := repo.GetWallet("missing")
		assert.ErrorIs(t, err, repositories.ErrWalletNotFound)
	})

	t.Run("update overwrites balance", func(t *testing.T) {
		repo := NewWalletRepository()
		require.NoError(t, repo.AddWallet(&models.Wallet{Address: "a", Balance: 1}, "key-1"))

		err := repo.UpdateWallet(&models.Wallet{Address: "a", Balance: 2.5, Currency: models.CurrencyBTC}, "a")
		require.NoError(t, err)

		wallet, err := repo.GetWallet("a")
		require.NoError(t, err)
		assert.Equal(t, 2.5, wallet.Balance)
		assert.Equal(t, "key-1", wallet.APIKey, "update must not change ownership")
	})

	t.Run("update unknown address rejected", func(t *testing.T) {
		repo := NewWalletRepository()
		err := repo.UpdateWallet(&models.Wallet{Address: "missing"}, "missing")
		assert.ErrorIs(t, err, repositories.ErrWalletNotFound)
	})

	t.Run("update address mismatch rejected", func(t *testing.T) {
		repo := NewWalletRepository()
		require.NoError(t, repo.AddWallet(&models.Wallet{Address: "a"}, "key-1"))
		err := repo.UpdateWallet(&models.Wallet{Address: "b"}, "a")
		assert.ErrorIs(t, err, repositories.ErrAddressMismatch)
	})

	t.Run("ownership", func(t *testing.T) {
		repo := NewWalletRepository()
		require.NoError(t, repo.AddWallet(&models.Wallet{Address: "a"}, "key-1"))

		owner, err := repo.GetWalletOwner("a")
		require.NoError(t, err)
		assert.Equal(t, "key-1", owner)

		isOwner, err := repo.IsWalletOwner("a", "key-1")
		require.NoError(t, err)
		assert.True(t, isOwner)

		isOwner, err = repo.IsWalletOwner("a", "key-2")
		require.NoError(t, err)
		assert.False(t, isOwner)
	})

	t.Run("wallet count per user", func(t *testing.T) {
		repo := NewWalletRepository()
		require.NoError(t, repo.AddWallet(&models.Wallet{Address: "a"}, "key-1"))
		require.NoError(t, repo.AddWallet(&models.Wallet{Address: "b"}, "key-1"))
		require.NoError(t, repo.AddWallet(&models.Wallet{Address: "c"}, "key-2"))

		count, err := repo.GetWalletCount("key-1")
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		count, err = repo.GetWalletCount("nobody")
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("returned wallet is a copy", func(t *testing.T) {
		repo := NewWalletRepository()
		require.NoError(t, repo.AddWallet(&models.Wallet{Address: "a", Balance: 1}, "key-1"))

		wallet, err := repo.GetWallet("a")
		require.NoError(t, err)
		wallet.Balance = 99

		fresh, err := repo.GetWallet("a")
		require.NoError(t, err)
		assert.Equal(t, 1.0, fresh.Balance)
	})
}

func TestTransactionRepository(t *testing.T) {
	newLedger := func(t *testing.T) (*WalletRepository, *TransactionRepository) {
		t.Helper()
		wallets := NewWalletRepository()
		require.NoError(t, wallets.AddWallet(&models.Wallet{Address: "a"}, "user-1"))
		require.NoError(t, wallets.AddWallet(&models.Wallet{Address: "b"}, "user-2"))
		return wallets, NewTransactionRepository(wallets)
	}

	t.Run("indexes under wallet and owner", func(t *testing.T) {
		_, ledger := newLedger(t)
		entry := &models.TransactionEntry{EntryID: "e1", SourceAddress: "a", DestinationAddress: "b", Amount: 1}

		require.NoError(t, ledger.AddTransaction(entry, "a"))
		require.NoError(t, ledger.AddTransaction(entry, "b"))

		byWallet, err := ledger.GetTransactions("a")
		require.NoError(t, err)
		require.Len(t, byWallet, 1)
		assert.Equal(t, "e1", byWallet[0].EntryID)

		byUser, err := ledger.GetUserTransactions("user-2")
		require.NoError(t, err)
		require.Len(t, byUser, 1)
		assert.Equal(t, "e1", byUser[0].EntryID)
	})

	t.Run("unknown wallet rejected", func(t *testing.T) {
		_, ledger := newLedger(t)
		entry := &models.TransactionEntry{EntryID: "e1"}
		err := ledger.AddTransaction(entry, "missing")
		assert.ErrorIs(t, err, repositories.ErrWalletNotFound)
	})

	t.Run("same-owner entry appears once per user", func(t *testing.T) {
		wallets := NewWalletRepository()
		require.NoError(t, wallets.AddWallet(&models.Wallet{Address: "w1"}, "user-1"))
		require.NoError(t, wallets.AddWallet(&models.Wallet{Address: "w2"}, "user-1"))
		ledger := NewTransactionRepository(wallets)

		entry := &models.TransactionEntry{EntryID: "e1", SourceAddress: "w1", DestinationAddress: "w2"}
		require.NoError(t, ledger.AddTransaction(entry, "w1"))
		require.NoError(t, ledger.AddTransaction(entry, "w2"))

		byUser, err := ledger.GetUserTransactions("user-1")
		require.NoError(t, err)
		assert.Len(t, byUser, 1)
	})

	t.Run("empty reads", func(t *testing.T) {
		_, ledger := newLedger(t)

		byWallet, err := ledger.GetTransactions("a")
		require.NoError(t, err)
		assert.Empty(t, byWallet)

		byUser, err := ledger.GetUserTransactions("nobody")
		require.NoError(t, err)
		assert.Empty(t, byUser)
	})
}

func TestUserRepository(t *testing.T) {
	t.Run("add and lookup", func(t *testing.T) {
		repo := NewUserRepository()
		require.NoError(t, repo.AddUser(&models.User{Username: "alice", APIKey: "key-1"}))

		has, err := repo.HasAPIKey("key-1")
		require.NoError(t, err)
		assert.True(t, has)

		has, err = repo.HasUsername("alice")
		require.NoError(t, err)
		assert.True(t, has)

		user, err := repo.GetUserByAPIKey("key-1")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		repo := NewUserRepository()
		require.NoError(t, repo.AddUser(&models.User{Username: "alice", APIKey: "key-1"}))
		err := repo.AddUser(&models.User{Username: "alice", APIKey: "key-2"})
		assert.ErrorIs(t, err, repositories.ErrDuplicateUsername)
	})

	t.Run("unknown api key", func(t *testing.T) {
		repo := NewUserRepository()
		_, err := repo.GetUserByAPIKey("missing")
		assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	})
}

func TestStatisticsRepository(t *testing.T) {
	repo := NewStatisticsRepository()

	count, err := repo.GetTransactions()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.AddTransaction())
	require.NoError(t, repo.AddTransaction())
	require.NoError(t, repo.AddPlatformProfit(0.5))
	require.NoError(t, repo.AddPlatformProfit(0.25))

	count, err = repo.GetTransactions()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	profit, err := repo.GetPlatformProfit()
	require.NoError(t, err)
	assert.Equal(t, 0.75, profit)
}
