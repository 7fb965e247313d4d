package service

import (
	"path/filepath"
	"strings"

	"vocabulaire/internal/domain"
	"vocabulaire/internal/repository"

	"go.uber.org/zap"
)

// ReviewService saves quizzed words for later review
type ReviewService struct {
	repo      repository.WordListRepository
	extension string
	logger    *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(repo repository.WordListRepository, extension string, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		repo:      repo,
		extension: extension,
		logger:    logger,
	}
}

// ShouldOffer reports whether saving makes sense: only a partial sample
// of the word list is worth keeping as a separate file
func (s *ReviewService) ShouldOffer(saved *domain.QuizSet, totalLines int) bool {
	return saved.Len() > 0 && saved.Len() < totalLines
}

// FileName strips any extension from the user's input and appends the word list one
func (s *ReviewService) FileName(input string) (string, error) {
	name := strings.TrimSpace(input)
	name = strings.TrimSpace(strings.TrimSuffix(name, filepath.Ext(name)))
	if name == "" {
		return "", domain.ErrEmptyFileName
	}
	return name + s.extension, nil
}

// Save writes the saved sample as "term, definition" lines and returns the file path
func (s *ReviewService) Save(input string, saved *domain.QuizSet) (string, error) {
	path, err := s.FileName(input)
	if err != nil {
		return "", err
	}

	if err := s.repo.WriteLines(path, saved.Lines()); err != nil {
		s.logger.Error("Failed to save review file", zap.Error(err), zap.String("path", path))
		return "", err
	}

	s.logger.Info("Review file saved",
		zap.String("path", path),
		zap.Int("words", saved.Len()),
	)
	return path, nil
}
