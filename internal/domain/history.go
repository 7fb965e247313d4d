package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session identifies one quiz run over a word list
type Session struct {
	ID         uuid.UUID
	SourceFile string
	StartedAt  time.Time
}

// NewSession creates a session for the given source file
func NewSession(sourceFile string) Session {
	return Session{
		ID:         uuid.New(),
		SourceFile: sourceFile,
		StartedAt:  time.Now(),
	}
}

// RoundRecord is a finished round as stored in the history
type RoundRecord struct {
	ID        int64
	SessionID uuid.UUID
	Source    string
	Round     int
	Corrects  int
	Total     int
	Mistakes  []string
	CreatedAt time.Time
}

// TermStat aggregates misses for a single term
type TermStat struct {
	Term     string
	Misses   int
	LastMiss time.Time
}
