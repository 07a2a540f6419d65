package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgray/goalsmith/internal/db"
	"github.com/dgray/goalsmith/internal/domain"
)

// goalColumns is the canonical SELECT column list for goals.
const goalColumns = `id, title, description, specific, measurable, achievable,
		relevant, time_bound, domain, status, milestones, created_at, updated_at`

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	milestones, err := marshalMilestones(g.Milestones)
	if err != nil {
		return err
	}
	query := `INSERT INTO goals (id, title, description, specific, measurable, achievable,
		relevant, time_bound, domain, status, milestones, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		g.ID,
		g.Title,
		g.Description,
		g.Specific,
		g.Measurable,
		g.Achievable,
		g.Relevant,
		g.TimeBound,
		string(g.Domain),
		string(g.Status),
		milestones,
		g.CreatedAt.Format(time.RFC3339),
		g.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	g, err := scanGoal(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	return g, err
}

func (r *SQLiteGoalRepo) GetByPrefix(ctx context.Context, prefix string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id LIKE ? || '%' LIMIT 2`
	rows, err := r.db.QueryContext(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("querying goals by prefix: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}

	switch len(goals) {
	case 0:
		return nil, fmt.Errorf("goal %s: %w", prefix, ErrNotFound)
	case 1:
		return goals[0], nil
	default:
		return nil, fmt.Errorf("goal %s: %w", prefix, ErrAmbiguousID)
	}
}

func (r *SQLiteGoalRepo) List(ctx context.Context, status domain.GoalStatus) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals ORDER BY created_at`
	args := []any{}
	if status != "" {
		query = `SELECT ` + goalColumns + ` FROM goals WHERE status = ? ORDER BY created_at`
		args = append(args, string(status))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
	milestones, err := marshalMilestones(g.Milestones)
	if err != nil {
		return err
	}
	query := `UPDATE goals SET title = ?, description = ?, specific = ?, measurable = ?,
		achievable = ?, relevant = ?, time_bound = ?, domain = ?, status = ?,
		milestones = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		g.Title,
		g.Description,
		g.Specific,
		g.Measurable,
		g.Achievable,
		g.Relevant,
		g.TimeBound,
		string(g.Domain),
		string(g.Status),
		milestones,
		g.UpdatedAt.Format(time.RFC3339),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("goal %s: %w", g.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	return nil
}

func marshalMilestones(milestones []domain.Milestone) (string, error) {
	if milestones == nil {
		milestones = []domain.Milestone{}
	}
	data, err := json.Marshal(milestones)
	if err != nil {
		return "", fmt.Errorf("marshaling milestones: %w", err)
	}
	return string(data), nil
}

// scanGoal scans one goal row via the given scan function, which works for
// both *sql.Row and *sql.Rows.
func scanGoal(scan func(dest ...any) error) (*domain.Goal, error) {
	var g domain.Goal
	var domainStr, statusStr, milestonesStr, createdAtStr, updatedAtStr string

	err := scan(
		&g.ID, &g.Title, &g.Description,
		&g.Specific, &g.Measurable, &g.Achievable, &g.Relevant, &g.TimeBound,
		&domainStr, &statusStr, &milestonesStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}

	g.Domain = domain.GoalDomain(domainStr)
	g.Status = domain.GoalStatus(statusStr)

	if err := json.Unmarshal([]byte(milestonesStr), &g.Milestones); err != nil {
		return nil, fmt.Errorf("parsing milestones: %w", err)
	}
	if g.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if g.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &g, nil
}
