package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/antigravity/internal/db"
	"github.com/alexanderramin/antigravity/internal/domain"
)

type SQLiteCheckInRepo struct {
	db db.DBTX
}

func NewSQLiteCheckInRepo(conn db.DBTX) *SQLiteCheckInRepo {
	return &SQLiteCheckInRepo{db: conn}
}

const checkInColumns = `id, date, mood, stress, digestion, sleep_quality, weather,
	temperature, air_quality, location, region_code, created_at`

// Upsert replaces the check-in for c.Date. A re-submitted check-in keeps the
// caller's id so the plan snapshot can tell the two apart.
func (r *SQLiteCheckInRepo) Upsert(ctx context.Context, c *domain.DailyCheckIn) error {
	query := `INSERT INTO check_ins (` + checkInColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			id = excluded.id,
			mood = excluded.mood,
			stress = excluded.stress,
			digestion = excluded.digestion,
			sleep_quality = excluded.sleep_quality,
			weather = excluded.weather,
			temperature = excluded.temperature,
			air_quality = excluded.air_quality,
			location = excluded.location,
			region_code = excluded.region_code,
			created_at = excluded.created_at`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Date,
		c.Mood,
		c.Stress,
		c.Digestion,
		c.SleepQuality,
		c.Environment.PerceivedWeather,
		c.Environment.TemperatureFeel,
		c.Environment.AirQuality,
		c.Environment.ActivityLocation,
		c.Environment.RegionCode,
		formatTime(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting check-in: %w", err)
	}
	return nil
}

func (r *SQLiteCheckInRepo) GetByDate(ctx context.Context, date string) (*domain.DailyCheckIn, error) {
	query := `SELECT ` + checkInColumns + ` FROM check_ins WHERE date = ?`
	c, err := scanCheckIn(r.db.QueryRowContext(ctx, query, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("check-in %s: %w", date, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCheckInRepo) ListRecent(ctx context.Context, limit int) ([]*domain.DailyCheckIn, error) {
	query := `SELECT ` + checkInColumns + ` FROM check_ins ORDER BY date DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing check-ins: %w", err)
	}
	defer rows.Close()

	var out []*domain.DailyCheckIn
	for rows.Next() {
		c, err := scanCheckIn(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCheckIn(s rowScanner) (*domain.DailyCheckIn, error) {
	var c domain.DailyCheckIn
	var createdAt string
	err := s.Scan(
		&c.ID,
		&c.Date,
		&c.Mood,
		&c.Stress,
		&c.Digestion,
		&c.SleepQuality,
		&c.Environment.PerceivedWeather,
		&c.Environment.TemperatureFeel,
		&c.Environment.AirQuality,
		&c.Environment.ActivityLocation,
		&c.Environment.RegionCode,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning check-in: %w", err)
	}
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("check-in created_at: %w", err)
	}
	return &c, nil
}
