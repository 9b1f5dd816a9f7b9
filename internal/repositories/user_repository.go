package repositories

import "custodia/internal/models"

// UserRepository maps API keys to usernames.
type UserRepository interface {
	AddUser(user *models.User) error
	HasAPIKey(apiKey string) (bool, error)
	HasUsername(username string) (bool, error)
	GetUserByAPIKey(apiKey string) (*models.User, error)
}
