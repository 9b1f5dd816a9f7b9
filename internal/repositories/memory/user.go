package memory

import (
	"sync"

	"custodia/internal/models"
	"custodia/internal/repositories"
)

type UserRepository struct {
	mu     sync.RWMutex
	byKey  map[string]models.User
	byName map[string]string
	nextID uint
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byKey:  make(map[string]models.User),
		byName: make(map[string]string),
		nextID: 1,
	}
}

func (r *UserRepository) AddUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.Username]; ok {
		return repositories.ErrDuplicateUsername
	}
	if _, ok := r.byKey[user.APIKey]; ok {
		return repositories.ErrDuplicateAPIKey
	}

	user.ID = r.nextID
	r.nextID++
	r.byKey[user.APIKey] = *user
	r.byName[user.Username] = user.APIKey
	return nil
}

func (r *UserRepository) HasAPIKey(apiKey string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byKey[apiKey]
	return ok, nil
}

func (r *UserRepository) HasUsername(username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byName[username]
	return ok, nil
}

func (r *UserRepository) GetUserByAPIKey(apiKey string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byKey[apiKey]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := user
	return &copied, nil
}
