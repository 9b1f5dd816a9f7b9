// Package statistics exposes the admin-gated platform counters.
package statistics

import (
	"context"
	"errors"

	"custodia/internal/config"
	"custodia/internal/repositories"
)

var ErrUnauthorized = errors.New("the specified admin API key is incorrect")

type Service interface {
	GetTotalTransactions(ctx context.Context, apiKey string) (int64, error)
	GetPlatformProfit(ctx context.Context, apiKey string) (float64, error)
}

type service struct {
	repo repositories.StatisticsRepository
	cfg  config.SystemConfig
}

// NewService creates a new statistics service.
func NewService(repo repositories.StatisticsRepository, cfg config.SystemConfig) Service {
	if repo == nil {
		panic("statistics repository is required")
	}
	return &service{repo: repo, cfg: cfg}
}

func (s *service) GetTotalTransactions(ctx context.Context, apiKey string) (int64, error) {
	if err := s.authorize(apiKey); err != nil {
		return 0, err
	}
	return s.repo.GetTransactions()
}

func (s *service) GetPlatformProfit(ctx context.Context, apiKey string) (float64, error) {
	if err := s.authorize(apiKey); err != nil {
		return 0, err
	}
	return s.repo.GetPlatformProfit()
}

func (s *service) authorize(apiKey string) error {
	if s.cfg.AdminAPIKey == "" || apiKey != s.cfg.AdminAPIKey {
		return ErrUnauthorized
	}
	return nil
}
