package service

import (
	"fmt"

	"vocabulaire/internal/domain"
	"vocabulaire/internal/repository"

	"go.uber.org/zap"
)

// StatsService handles quiz history statistics and cleanup
type StatsService struct {
	history       repository.HistoryRepository
	retentionDays int
	logger        *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(history repository.HistoryRepository, retentionDays int, logger *zap.Logger) *StatsService {
	return &StatsService{
		history:       history,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// CleanupOldData removes rounds older than the retention period
func (s *StatsService) CleanupOldData() error {
	s.logger.Info("Starting cleanup of old rounds", zap.Int("retention_days", s.retentionDays))

	err := s.history.CleanOldRounds(s.retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup old rounds", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}

// MostMissed returns the terms missed most often
func (s *StatsService) MostMissed(limit int) ([]domain.TermStat, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}
	return s.history.GetMostMissed(limit)
}
