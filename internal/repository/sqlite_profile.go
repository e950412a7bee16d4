package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/npellerin/foulee/internal/db"
	"github.com/npellerin/foulee/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database. The
// installation holds one profile under a fixed row id.
type SQLiteProfileRepo struct {
	db db.DBTX
}

const profileRowID = "default"

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT id, name, level, mode, goal, target_date, training_days,
		day_count_min, day_count_max, spacing_min, spacing_max, vdot, created_at, updated_at
		FROM profiles WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, profileRowID)

	var p domain.Profile
	var level, mode, goal, days string
	var targetDate sql.NullString
	var vdot sql.NullFloat64
	var createdAt, updatedAt string

	err := row.Scan(
		&p.ID, &p.Name, &level, &mode, &goal, &targetDate, &days,
		&p.DayCountMin, &p.DayCountMax, &p.SpacingMin, &p.SpacingMax,
		&vdot, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	p.Level = domain.Level(level)
	p.Mode = domain.Mode(mode)
	p.Goal = domain.Distance(goal)
	p.TargetRun = parseNullableTime(targetDate, dateLayout)
	p.TrainingDays = daysFromString(days)
	if vdot.Valid {
		v := vdot.Float64
		p.VDOT = &v
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	if p.ID == "" {
		p.ID = profileRowID
	}
	query := `INSERT OR REPLACE INTO profiles (id, name, level, mode, goal, target_date,
		training_days, day_count_min, day_count_max, spacing_min, spacing_max, vdot,
		created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		string(p.Level),
		string(p.Mode),
		string(p.Goal),
		nullableTimeToString(p.TargetRun, dateLayout),
		daysToString(p.TrainingDays),
		p.DayCountMin,
		p.DayCountMax,
		p.SpacingMin,
		p.SpacingMax,
		nullableFloatToValue(p.VDOT),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
