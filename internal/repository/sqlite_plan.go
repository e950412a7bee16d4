package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/npellerin/foulee/internal/db"
	"github.com/npellerin/foulee/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.TrainingPlan) error {
	query := `INSERT INTO plans (id, mode, goal, level, nb_weeks, start_date, end_date, days, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		string(p.Mode),
		string(p.Goal),
		string(p.Level),
		p.NbWeeks,
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		daysToString(p.Days),
		boolToInt(p.Active),
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}

	for _, phase := range p.Phases {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO plan_phases (plan_id, name, week_start, week_end) VALUES (?, ?, ?, ?)`,
			p.ID, string(phase.Name), phase.WeekStart, phase.WeekEnd,
		)
		if err != nil {
			return fmt.Errorf("inserting plan phase %s: %w", phase.Name, err)
		}
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.TrainingPlan, error) {
	query := `SELECT id, mode, goal, level, nb_weeks, start_date, end_date, days, active, created_at
		FROM plans WHERE id = ?`
	return r.scanPlan(ctx, r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLitePlanRepo) GetActive(ctx context.Context) (*domain.TrainingPlan, error) {
	query := `SELECT id, mode, goal, level, nb_weeks, start_date, end_date, days, active, created_at
		FROM plans WHERE active = 1 ORDER BY created_at DESC LIMIT 1`
	return r.scanPlan(ctx, r.db.QueryRowContext(ctx, query))
}

func (r *SQLitePlanRepo) DeactivateAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE plans SET active = 0 WHERE active = 1`); err != nil {
		return fmt.Errorf("deactivating plans: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) CreateSession(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (id, plan_id, slot_id, date, week, phase, type, title,
		description, duration_min, distance_km, tags, steps, risk_level, risk_alerts,
		risk_notes, template_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.PlanID,
		s.SlotID,
		s.Date.Format(dateLayout),
		s.Week,
		string(s.Phase),
		string(s.Type),
		s.Title,
		s.Description,
		s.DurationMin,
		s.DistanceKm,
		tagsToString(s.Tags),
		linesToString(s.Steps),
		string(s.WarRoom.Level),
		linesToString(s.WarRoom.Alerts),
		linesToString(s.WarRoom.Notes),
		s.Metadata["template"],
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) ListSessions(ctx context.Context, planID string) ([]*domain.Session, error) {
	query := sessionSelect + ` WHERE plan_id = ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLitePlanRepo) ListSessionsFrom(ctx context.Context, planID string, from time.Time) ([]*domain.Session, error) {
	query := sessionSelect + ` WHERE plan_id = ? AND date >= ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, planID, from.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing sessions from %s: %w", from.Format(dateLayout), err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

const sessionSelect = `SELECT id, plan_id, slot_id, date, week, phase, type, title,
	description, duration_min, distance_km, tags, steps, risk_level, risk_alerts,
	risk_notes, template_code, created_at FROM sessions`

func (r *SQLitePlanRepo) scanPlan(ctx context.Context, row *sql.Row) (*domain.TrainingPlan, error) {
	var p domain.TrainingPlan
	var mode, goal, level, startDate, endDate, days, createdAt string
	var active int

	err := row.Scan(&p.ID, &mode, &goal, &level, &p.NbWeeks, &startDate, &endDate, &days, &active, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	p.Mode = domain.Mode(mode)
	p.Goal = domain.Distance(goal)
	p.Level = domain.Level(level)
	p.StartDate, _ = time.Parse(dateLayout, startDate)
	p.EndDate, _ = time.Parse(dateLayout, endDate)
	p.Days = daysFromString(days)
	p.Active = active == 1
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	phases, err := r.listPhases(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Phases = phases

	return &p, nil
}

func (r *SQLitePlanRepo) listPhases(ctx context.Context, planID string) ([]domain.Phase, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, week_start, week_end FROM plan_phases WHERE plan_id = ? ORDER BY week_start`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing plan phases: %w", err)
	}
	defer rows.Close()

	var phases []domain.Phase
	for rows.Next() {
		var name string
		var phase domain.Phase
		if err := rows.Scan(&name, &phase.WeekStart, &phase.WeekEnd); err != nil {
			return nil, fmt.Errorf("scanning plan phase: %w", err)
		}
		phase.Name = domain.PhaseName(name)
		phases = append(phases, phase)
	}
	return phases, rows.Err()
}

func (r *SQLitePlanRepo) scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		var date, phase, typ, tags, steps, riskLevel, alerts, notes, tplCode, createdAt string

		err := rows.Scan(
			&s.ID, &s.PlanID, &s.SlotID, &date, &s.Week, &phase, &typ, &s.Title,
			&s.Description, &s.DurationMin, &s.DistanceKm, &tags, &steps,
			&riskLevel, &alerts, &notes, &tplCode, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}

		s.Date, _ = time.Parse(dateLayout, date)
		s.Phase = domain.PhaseName(phase)
		s.Type = domain.SessionType(typ)
		s.Tags = tagsFromString(tags)
		s.Steps = linesFromString(steps)
		s.WarRoom = domain.WarRoom{
			Level:  domain.RiskLevel(riskLevel),
			Alerts: linesFromString(alerts),
			Notes:  linesFromString(notes),
		}
		if tplCode != "" {
			s.Metadata = map[string]string{"template": tplCode}
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		sessions = append(sessions, &s)
	}
	return sessions, rows.Err()
}
