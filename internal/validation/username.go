// Package validation holds the request validator chains for user
// registration and wallet creation.
package validation

import (
	"errors"
	"fmt"

	"custodia/internal/repositories"
)

var ErrInvalidUsername = errors.New("invalid username")

// UsernameValidator rejects usernames that may not be registered.
type UsernameValidator interface {
	Validate(username string) error
}

type ShortUsernameValidator struct {
	MinLength int
}

func (v ShortUsernameValidator) Validate(username string) error {
	if len(username) < v.MinLength {
		return fmt.Errorf("%w: must not be shorter than %d characters", ErrInvalidUsername, v.MinLength)
	}
	return nil
}

type LongUsernameValidator struct {
	MaxLength int
}

func (v LongUsernameValidator) Validate(username string) error {
	if len(username) > v.MaxLength {
		return fmt.Errorf("%w: must not be longer than %d characters", ErrInvalidUsername, v.MaxLength)
	}
	return nil
}

type DuplicateUsernameValidator struct {
	Users repositories.UserRepository
}

func (v DuplicateUsernameValidator) Validate(username string) error {
	taken, err := v.Users.HasUsername(username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return fmt.Errorf("%w: %q already exists", ErrInvalidUsername, username)
	}
	return nil
}
