package user

import (
	"context"
	"testing"

	"custodia/internal/repositories"
	"custodia/internal/repositories/memory"
	"custodia/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(users repositories.UserRepository) Service {
	return NewService(users,
		validation.ShortUsernameValidator{MinLength: 4},
		validation.LongUsernameValidator{MaxLength: 20},
		validation.DuplicateUsernameValidator{Users: users},
	)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a uuid api key", func(t *testing.T) {
		users := memory.NewUserRepository()
		svc := newService(users)

		apiKey, err := svc.Register(ctx, "alice")
		require.NoError(t, err)

		_, err = uuid.Parse(apiKey)
		assert.NoError(t, err)

		stored, err := users.GetUserByAPIKey(apiKey)
		require.NoError(t, err)
		assert.Equal(t, "alice", stored.Username)
	})

	t.Run("keys are unique per user", func(t *testing.T) {
		users := memory.NewUserRepository()
		svc := newService(users)

		first, err := svc.Register(ctx, "alice")
		require.NoError(t, err)
		second, err := svc.Register(ctx, "bobby")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("rejects short username", func(t *testing.T) {
		svc := newService(memory.NewUserRepository())
		_, err := svc.Register(ctx, "bob")
		assert.ErrorIs(t, err, validation.ErrInvalidUsername)
	})

	t.Run("rejects long username", func(t *testing.T) {
		svc := newService(memory.NewUserRepository())
		_, err := svc.Register(ctx, "this-username-is-far-too-long")
		assert.ErrorIs(t, err, validation.ErrInvalidUsername)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		users := memory.NewUserRepository()
		svc := newService(users)

		_, err := svc.Register(ctx, "alice")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "alice")
		assert.ErrorIs(t, err, validation.ErrInvalidUsername)
	})
}
