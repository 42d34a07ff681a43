package services

import (
	"context"
	"fmt"

	"roboticsclub/internal/domain"
)

// StatsService exposes the dashboard aggregates to the delivery layer.
type StatsService struct {
	statsRepo domain.StatsRepository
}

func NewStatsService(statsRepo domain.StatsRepository) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
	}
}

func (s *StatsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := s.statsRepo.Dashboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return stats, nil
}
