package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"vocabulaire/internal/domain"
	"vocabulaire/internal/repository"

	"go.uber.org/zap"
)

// LoaderService resolves and reads word list files
type LoaderService struct {
	repo      repository.WordListRepository
	extension string
	logger    *zap.Logger
}

// NewLoaderService creates a new loader service
func NewLoaderService(repo repository.WordListRepository, extension string, logger *zap.Logger) *LoaderService {
	return &LoaderService{
		repo:      repo,
		extension: extension,
		logger:    logger,
	}
}

// Extension returns the required word list extension
func (s *LoaderService) Extension() string {
	return s.extension
}

// ResolvePath turns a candidate path into an absolute path to an existing
// word list. Malformed and missing paths both report ErrFileNotFound.
func (s *LoaderService) ResolvePath(candidate string) (string, error) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return "", domain.ErrFileNotFound
	}

	path, err := filepath.Abs(candidate)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrFileNotFound, candidate)
	}

	if !strings.HasSuffix(path, s.extension) {
		return "", fmt.Errorf("%w: %s does not end in %s", domain.ErrInvalidExtension, path, s.extension)
	}
	if !s.repo.Exists(path) {
		return "", fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
	}

	return path, nil
}

// Load reads every raw line of the word list
func (s *LoaderService) Load(path string) ([]string, error) {
	lines, err := s.repo.ReadLines(path)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Word list loaded",
		zap.String("path", path),
		zap.Int("lines", len(lines)),
	)
	return lines, nil
}
