package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"vocabulaire/internal/domain"
	"vocabulaire/internal/repository"

	"go.uber.org/zap"
)

// SplitService breaks a word list into smaller files
type SplitService struct {
	repo      repository.WordListRepository
	extension string
	logger    *zap.Logger
}

// NewSplitService creates a new split service
func NewSplitService(repo repository.WordListRepository, extension string, logger *zap.Logger) *SplitService {
	return &SplitService{
		repo:      repo,
		extension: extension,
		logger:    logger,
	}
}

// Partition cuts lines into consecutive chunks of size; the last may be shorter
func Partition(lines []string, size int) ([][]string, error) {
	if size < 1 {
		return nil, domain.ErrInvalidChunkSize
	}

	parts := make([][]string, 0, (len(lines)+size-1)/size)
	for start := 0; start < len(lines); start += size {
		end := min(start+size, len(lines))
		parts = append(parts, lines[start:end])
	}
	return parts, nil
}

// PartFileName returns <dir>/<stem>_part<k><ext> for the k-th (1-based) part of source
func PartFileName(source string, k int, extension string) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(source), fmt.Sprintf("%s_part%d%s", stem, k, extension))
}

// Split writes each chunk of lines next to source and returns the written paths
func (s *SplitService) Split(source string, lines []string, size int) ([]string, error) {
	parts, err := Partition(lines, size)
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(parts))
	for i, part := range parts {
		path := PartFileName(source, i+1, s.extension)
		if err := s.repo.WriteLines(path, part); err != nil {
			return written, fmt.Errorf("failed to write part %d: %w", i+1, err)
		}
		written = append(written, path)
	}

	s.logger.Info("Word list split",
		zap.String("source", source),
		zap.Int("chunk_size", size),
		zap.Int("files", len(written)),
	)
	return written, nil
}
