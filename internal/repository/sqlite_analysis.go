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

const analysisColumns = `id, goal_id, description, report, overall_confidence, created_at`

// SQLiteAnalysisRepo implements AnalysisRepo using a SQLite database.
// The full report is stored as a JSON document; goal_id is NULL for ad hoc
// analyses not attached to a stored goal.
type SQLiteAnalysisRepo struct {
	db db.DBTX
}

// NewSQLiteAnalysisRepo creates a new SQLiteAnalysisRepo.
func NewSQLiteAnalysisRepo(conn db.DBTX) *SQLiteAnalysisRepo {
	return &SQLiteAnalysisRepo{db: conn}
}

func (r *SQLiteAnalysisRepo) Create(ctx context.Context, a *domain.AnalysisRecord) error {
	report, err := json.Marshal(a.Report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	query := `INSERT INTO analyses (id, goal_id, description, report, overall_confidence, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		a.ID,
		nullableStringToValue(a.GoalID),
		a.Description,
		string(report),
		a.OverallConfidence,
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting analysis: %w", err)
	}
	return nil
}

func (r *SQLiteAnalysisRepo) GetByID(ctx context.Context, id string) (*domain.AnalysisRecord, error) {
	query := `SELECT ` + analysisColumns + ` FROM analyses WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	a, err := scanAnalysis(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("analysis %s: %w", id, ErrNotFound)
	}
	return a, err
}

func (r *SQLiteAnalysisRepo) ListByGoal(ctx context.Context, goalID string) ([]*domain.AnalysisRecord, error) {
	query := `SELECT ` + analysisColumns + ` FROM analyses WHERE goal_id = ? ORDER BY created_at DESC`
	return r.list(ctx, query, goalID)
}

func (r *SQLiteAnalysisRepo) ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisRecord, error) {
	query := `SELECT ` + analysisColumns + ` FROM analyses ORDER BY created_at DESC LIMIT ?`
	return r.list(ctx, query, limit)
}

func (r *SQLiteAnalysisRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting analysis: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("analysis %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteAnalysisRepo) list(ctx context.Context, query string, args ...any) ([]*domain.AnalysisRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()

	var records []*domain.AnalysisRecord
	for rows.Next() {
		a, err := scanAnalysis(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analyses: %w", err)
	}
	return records, nil
}

func scanAnalysis(scan func(dest ...any) error) (*domain.AnalysisRecord, error) {
	var a domain.AnalysisRecord
	var goalID sql.NullString
	var reportStr, createdAtStr string

	err := scan(&a.ID, &goalID, &a.Description, &reportStr, &a.OverallConfidence, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning analysis: %w", err)
	}

	a.GoalID = goalID.String
	if err := json.Unmarshal([]byte(reportStr), &a.Report); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	if a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &a, nil
}
