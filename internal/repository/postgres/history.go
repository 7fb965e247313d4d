package postgres

import (
	"database/sql"
	"fmt"

	"vocabulaire/internal/domain"
)

// HistoryRepo implements repository.HistoryRepository
type HistoryRepo struct {
	db *sql.DB
}

// NewHistoryRepo creates a new history repository
func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// SaveRound stores a finished round and its missed terms in one transaction
func (r *HistoryRepo) SaveRound(record domain.RoundRecord) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO quiz_rounds (session_id, source_file, round, corrects, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err = tx.QueryRow(query,
		record.SessionID.String(), record.Source, record.Round, record.Corrects, record.Total,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert round: %w", err)
	}

	for _, term := range record.Mistakes {
		_, err := tx.Exec(`INSERT INTO quiz_mistakes (round_id, term) VALUES ($1, $2)`, id, term)
		if err != nil {
			return 0, fmt.Errorf("failed to insert mistake %q: %w", term, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit round: %w", err)
	}
	return id, nil
}

// GetMostMissed returns terms ordered by how often they were missed
func (r *HistoryRepo) GetMostMissed(limit int) ([]domain.TermStat, error) {
	query := `
		SELECT m.term, COUNT(*) AS misses, MAX(r.created_at) AS last_miss
		FROM quiz_mistakes m
		JOIN quiz_rounds r ON r.id = m.round_id
		GROUP BY m.term
		ORDER BY misses DESC, last_miss DESC
		LIMIT $1
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.TermStat
	for rows.Next() {
		var s domain.TermStat
		if err := rows.Scan(&s.Term, &s.Misses, &s.LastMiss); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// CleanOldRounds deletes rounds older than specified days.
// Missed terms go with them through ON DELETE CASCADE.
func (r *HistoryRepo) CleanOldRounds(days int) error {
	query := `
		DELETE FROM quiz_rounds
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}
