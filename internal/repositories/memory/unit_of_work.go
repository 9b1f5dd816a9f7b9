package memory

import (
	"context"
	"sync"

	"custodia/internal/repositories"
)

type unitOfWork struct {
	mu     sync.Mutex
	stores repositories.Stores
}

// NewUnitOfWork creates a UnitOfWork over the shared in-memory stores.
// Units are serialized under one mutex; unlike the database-backed
// implementation there is no rollback, so fn must validate before mutating.
func NewUnitOfWork(stores repositories.Stores) repositories.UnitOfWork {
	return &unitOfWork{stores: stores}
}

func (u *unitOfWork) Execute(ctx context.Context, fn func(repositories.Stores) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(u.stores)
}
