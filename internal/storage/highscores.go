package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// HighScore is one finished session.
type HighScore struct {
	SessionID   string
	Score       int
	Level       int
	BombsCaught int
	FinishedAt  time.Time
}

// HighScoreRepository stores finished sessions.
type HighScoreRepository interface {
	Save(ctx context.Context, score HighScore) error
	Top(ctx context.Context, limit int) ([]HighScore, error)
	Best(ctx context.Context) (HighScore, bool, error)
}

// SQLiteHighScoreRepository implements HighScoreRepository for SQLite.
type SQLiteHighScoreRepository struct {
	db *sql.DB
}

func NewSQLiteHighScoreRepository(db *sql.DB) *SQLiteHighScoreRepository {
	return &SQLiteHighScoreRepository{db: db}
}

// Save inserts the session result. Saving the same session twice keeps the higher score.
func (r *SQLiteHighScoreRepository) Save(ctx context.Context, s HighScore) error {
	if s.SessionID == "" {
		return errors.New("high score without session id")
	}
	if s.FinishedAt.IsZero() {
		s.FinishedAt = time.Now()
	}

	query := `
		INSERT INTO high_scores (session_id, score, level, bombs_caught, finished_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			score = excluded.score,
			level = excluded.level,
			bombs_caught = excluded.bombs_caught,
			finished_at = excluded.finished_at
		WHERE excluded.score > high_scores.score
	`
	_, err := r.db.ExecContext(ctx, query, s.SessionID, s.Score, s.Level, s.BombsCaught, s.FinishedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	return nil
}

// Top returns up to limit results, best first. Ties go to the earlier session.
func (r *SQLiteHighScoreRepository) Top(ctx context.Context, limit int) ([]HighScore, error) {
	query := `SELECT session_id, score, level, bombs_caught, finished_at FROM high_scores ORDER BY score DESC, finished_at ASC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query high scores: %w", err)
	}
	defer rows.Close()

	var scores []HighScore
	for rows.Next() {
		var s HighScore
		if err := rows.Scan(&s.SessionID, &s.Score, &s.Level, &s.BombsCaught, &s.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan high score: %w", err)
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

// Best returns the top result, or false when the table is empty.
func (r *SQLiteHighScoreRepository) Best(ctx context.Context) (HighScore, bool, error) {
	top, err := r.Top(ctx, 1)
	if err != nil {
		return HighScore{}, false, err
	}
	if len(top) == 0 {
		return HighScore{}, false, nil
	}
	return top[0], true, nil
}
