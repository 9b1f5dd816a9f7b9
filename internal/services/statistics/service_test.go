package statistics

import (
	"context"
	"testing"

	"custodia/internal/config"
	"custodia/internal/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsAuthorization(t *testing.T) {
	ctx := context.Background()

	repo := memory.NewStatisticsRepository()
	require.NoError(t, repo.AddTransaction())
	require.NoError(t, repo.AddTransaction())
	require.NoError(t, repo.AddPlatformProfit(0.75))

	t.Run("admin key reads counters", func(t *testing.T) {
		svc := NewService(repo, config.SystemConfig{AdminAPIKey: "admin-key"})

		count, err := svc.GetTotalTransactions(ctx, "admin-key")
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		profit, err := svc.GetPlatformProfit(ctx, "admin-key")
		require.NoError(t, err)
		assert.Equal(t, 0.75, profit)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		svc := NewService(repo, config.SystemConfig{AdminAPIKey: "admin-key"})

		_, err := svc.GetTotalTransactions(ctx, "not-admin")
		assert.ErrorIs(t, err, ErrUnauthorized)

		_, err = svc.GetPlatformProfit(ctx, "not-admin")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unset admin key rejects everyone", func(t *testing.T) {
		svc := NewService(repo, config.SystemConfig{})

		_, err := svc.GetTotalTransactions(ctx, "")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}
