package repository

import (
	"vocabulaire/internal/domain"
)

// WordListRepository defines word list file operations
type WordListRepository interface {
	// Exists reports whether path names a readable regular file
	Exists(path string) bool
	ReadLines(path string) ([]string, error)
	WriteLines(path string, lines []string) error
}

// HistoryRepository defines quiz history operations
type HistoryRepository interface {
	SaveRound(record domain.RoundRecord) (int64, error)
	GetMostMissed(limit int) ([]domain.TermStat, error)
	CleanOldRounds(days int) error
}
