package service

import (
	"context"

	"github.com/pkg/errors"

	"exusiai.dev/statsboard/internal/repo"
)

var ErrUpstreamNotReachable = errors.New("stats backend not reachable")

type Health struct {
	StatsRepo *repo.Stats
}

func NewHealth(statsRepo *repo.Stats) *Health {
	return &Health{
		StatsRepo: statsRepo,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	if err := s.StatsRepo.Ping(ctx); err != nil {
		return errors.Wrap(ErrUpstreamNotReachable, err.Error())
	}

	return nil
}
