package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/antigravity/internal/db"
	"github.com/alexanderramin/antigravity/internal/domain"
)

// SQLitePlanRepo stores plans as JSON snapshots. A snapshot is only ever
// replaced whole or stamped invalid.
type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Save(ctx context.Context, p *domain.PlanOfDay) error {
	snapshot, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding plan snapshot: %w", err)
	}
	query := `INSERT OR REPLACE INTO plans (date, id, check_in_id, snapshot_json, generated_at, invalidated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.Date,
		p.ID,
		p.CheckInID,
		string(snapshot),
		formatTime(p.GeneratedAt),
		nullableTimeToString(p.InvalidatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByDate(ctx context.Context, date string) (*domain.PlanOfDay, error) {
	query := `SELECT snapshot_json, invalidated_at FROM plans WHERE date = ?`
	var snapshot string
	var invalidatedAt sql.NullString
	err := r.db.QueryRowContext(ctx, query, date).Scan(&snapshot, &invalidatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("plan %s: %w", date, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	var p domain.PlanOfDay
	if err := json.Unmarshal([]byte(snapshot), &p); err != nil {
		return nil, fmt.Errorf("decoding plan snapshot: %w", err)
	}
	// The column is authoritative; the snapshot body is never rewritten.
	p.InvalidatedAt = parseNullableTime(invalidatedAt)
	return &p, nil
}

// Invalidate marks the date's plan stale. A missing plan is not an error,
// and an already invalid plan keeps its first timestamp.
func (r *SQLitePlanRepo) Invalidate(ctx context.Context, date string, at time.Time) error {
	query := `UPDATE plans SET invalidated_at = ? WHERE date = ? AND invalidated_at IS NULL`
	if _, err := r.db.ExecContext(ctx, query, formatTime(at), date); err != nil {
		return fmt.Errorf("invalidating plan %s: %w", date, err)
	}
	return nil
}
