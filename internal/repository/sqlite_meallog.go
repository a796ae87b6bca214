package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/antigravity/internal/db"
	"github.com/alexanderramin/antigravity/internal/domain"
)

type SQLiteMealLogRepo struct {
	db db.DBTX
}

func NewSQLiteMealLogRepo(conn db.DBTX) *SQLiteMealLogRepo {
	return &SQLiteMealLogRepo{db: conn}
}

const mealColumns = `id, date, meal_type, tags_json, portion, estimated_calories, notes, logged_at`

func (r *SQLiteMealLogRepo) Create(ctx context.Context, m *domain.MealLog) error {
	tags, err := encodeTags(m.Tags)
	if err != nil {
		return err
	}
	query := `INSERT INTO meal_logs (` + mealColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		m.ID,
		m.Date,
		m.MealType,
		tags,
		m.Portion,
		nullableIntToValue(m.EstimatedCalories),
		m.Notes,
		formatTime(m.LoggedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting meal log: %w", err)
	}
	return nil
}

func (r *SQLiteMealLogRepo) GetByID(ctx context.Context, id string) (*domain.MealLog, error) {
	query := `SELECT ` + mealColumns + ` FROM meal_logs WHERE id = ?`
	m, err := scanMeal(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("meal log %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return m, nil
}

// ListByDate returns the day's meals oldest first. Rows logged at the same
// instant keep insertion order.
func (r *SQLiteMealLogRepo) ListByDate(ctx context.Context, date string) ([]*domain.MealLog, error) {
	query := `SELECT ` + mealColumns + ` FROM meal_logs WHERE date = ? ORDER BY logged_at, rowid`
	return r.list(ctx, query, date)
}

// ListBetween returns meals dated from..to inclusive, grouped by date and
// ordered within a day like ListByDate.
func (r *SQLiteMealLogRepo) ListBetween(ctx context.Context, from, to string) ([]*domain.MealLog, error) {
	query := `SELECT ` + mealColumns + ` FROM meal_logs WHERE date >= ? AND date <= ? ORDER BY date, logged_at, rowid`
	return r.list(ctx, query, from, to)
}

func (r *SQLiteMealLogRepo) list(ctx context.Context, query string, args ...any) ([]*domain.MealLog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing meal logs: %w", err)
	}
	defer rows.Close()

	var out []*domain.MealLog
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *SQLiteMealLogRepo) Update(ctx context.Context, m *domain.MealLog) error {
	tags, err := encodeTags(m.Tags)
	if err != nil {
		return err
	}
	query := `UPDATE meal_logs SET date = ?, meal_type = ?, tags_json = ?, portion = ?,
		estimated_calories = ?, notes = ?, logged_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		m.Date,
		m.MealType,
		tags,
		m.Portion,
		nullableIntToValue(m.EstimatedCalories),
		m.Notes,
		formatTime(m.LoggedAt),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating meal log: %w", err)
	}
	return requireAffected(res, "meal log "+m.ID)
}

func (r *SQLiteMealLogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM meal_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting meal log: %w", err)
	}
	return requireAffected(res, "meal log "+id)
}

func scanMeal(s rowScanner) (*domain.MealLog, error) {
	var (
		m        domain.MealLog
		tagsJSON string
		calories sql.NullInt64
		loggedAt string
	)
	err := s.Scan(&m.ID, &m.Date, &m.MealType, &tagsJSON, &m.Portion, &calories, &m.Notes, &loggedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning meal log: %w", err)
	}
	if m.Tags, err = decodeTags[domain.MealTag](tagsJSON); err != nil {
		return nil, fmt.Errorf("meal log %s: %w", m.ID, err)
	}
	if calories.Valid {
		c := int(calories.Int64)
		m.EstimatedCalories = &c
	}
	if m.LoggedAt, err = parseTime(loggedAt); err != nil {
		return nil, fmt.Errorf("meal log logged_at: %w", err)
	}
	return &m, nil
}
