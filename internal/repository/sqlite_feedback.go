package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/npellerin/foulee/internal/db"
	"github.com/npellerin/foulee/internal/domain"
)

// SQLiteFeedbackRepo implements FeedbackRepo using a SQLite database.
type SQLiteFeedbackRepo struct {
	db db.DBTX
}

// NewSQLiteFeedbackRepo creates a new SQLiteFeedbackRepo.
func NewSQLiteFeedbackRepo(conn db.DBTX) *SQLiteFeedbackRepo {
	return &SQLiteFeedbackRepo{db: conn}
}

func (r *SQLiteFeedbackRepo) Upsert(ctx context.Context, f *domain.Feedback) error {
	query := `INSERT INTO feedback (id, date, state, note, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET state = excluded.state, note = excluded.note`
	_, err := r.db.ExecContext(ctx, query,
		f.ID,
		f.Date.Format(dateLayout),
		string(f.State),
		f.Note,
		f.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting feedback: %w", err)
	}
	return nil
}

func (r *SQLiteFeedbackRepo) GetByDate(ctx context.Context, date time.Time) (*domain.Feedback, error) {
	query := `SELECT id, date, state, note, created_at FROM feedback WHERE date = ?`
	row := r.db.QueryRowContext(ctx, query, date.Format(dateLayout))

	var f domain.Feedback
	var day, state, createdAt string
	if err := row.Scan(&f.ID, &day, &state, &f.Note, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("feedback: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning feedback: %w", err)
	}

	f.Date, _ = time.Parse(dateLayout, day)
	f.State = domain.PerceivedState(state)
	f.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &f, nil
}

func (r *SQLiteFeedbackRepo) ListRecent(ctx context.Context, days int) ([]*domain.Feedback, error) {
	query := `SELECT id, date, state, note, created_at FROM feedback
		WHERE date >= date('now', ? || ' days') ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent feedback: %w", err)
	}
	defer rows.Close()

	var out []*domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		var day, state, createdAt string
		if err := rows.Scan(&f.ID, &day, &state, &f.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning feedback: %w", err)
		}
		f.Date, _ = time.Parse(dateLayout, day)
		f.State = domain.PerceivedState(state)
		f.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, &f)
	}
	return out, rows.Err()
}
