// Package user handles registration: a validated username is exchanged for
// a freshly generated API key, the bearer credential for everything else.
package user

import (
	"context"
	"fmt"

	"custodia/internal/models"
	"custodia/internal/repositories"
	"custodia/internal/validation"

	"github.com/google/uuid"
)

type Service interface {
	Register(ctx context.Context, username string) (string, error)
}

type service struct {
	users      repositories.UserRepository
	validators []validation.UsernameValidator
}

// NewService creates a new user service.
func NewService(users repositories.UserRepository, validators ...validation.UsernameValidator) Service {
	if users == nil {
		panic("user repository is required")
	}
	return &service{users: users, validators: validators}
}

func (s *service) Register(ctx context.Context, username string) (string, error) {
	for _, v := range s.validators {
		if err := v.Validate(username); err != nil {
			return "", err
		}
	}

	apiKey := uuid.NewString()
	err := s.users.AddUser(&models.User{Username: username, APIKey: apiKey})
	if err != nil {
		return "", fmt.Errorf("failed to register user: %w", err)
	}
	return apiKey, nil
}
