package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/antigravity/internal/db"
	"github.com/alexanderramin/antigravity/internal/domain"
)

type SQLiteUserProfileRepo struct {
	db db.DBTX
}

func NewSQLiteUserProfileRepo(conn db.DBTX) *SQLiteUserProfileRepo {
	return &SQLiteUserProfileRepo{db: conn}
}

func (r *SQLiteUserProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT id, goal, diseases_json, usual_bedtime, usual_wakeup, is_shift_worker,
		height_cm, weight_kg, muscle_mass_kg, fat_mass_kg, body_fat_percent, waist_cm,
		created_at, updated_at
		FROM user_profile WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, domain.DefaultProfileID)

	var (
		p                           domain.UserProfile
		diseasesJSON                string
		shiftWorker                 int
		muscle, fat, bodyFat, waist sql.NullFloat64
		createdAt, updatedAt        string
	)
	err := row.Scan(
		&p.ID,
		&p.Goal,
		&diseasesJSON,
		&p.SleepProfile.UsualBedtime,
		&p.SleepProfile.UsualWakeup,
		&shiftWorker,
		&p.InBody.HeightCm,
		&p.InBody.WeightKg,
		&muscle,
		&fat,
		&bodyFat,
		&waist,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}

	if p.Diseases, err = decodeTags[domain.Disease](diseasesJSON); err != nil {
		return nil, fmt.Errorf("user profile diseases: %w", err)
	}
	p.SleepProfile.IsShiftWorker = intToBool(shiftWorker)
	p.InBody.MuscleMassKg = floatFromNull(muscle)
	p.InBody.FatMassKg = floatFromNull(fat)
	p.InBody.BodyFatPercent = floatFromNull(bodyFat)
	p.InBody.WaistCm = floatFromNull(waist)
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("user profile created_at: %w", err)
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("user profile updated_at: %w", err)
	}
	return &p, nil
}

func (r *SQLiteUserProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	diseases, err := encodeTags(p.Diseases)
	if err != nil {
		return err
	}
	query := `INSERT OR REPLACE INTO user_profile (id, goal, diseases_json, usual_bedtime,
		usual_wakeup, is_shift_worker, height_cm, weight_kg, muscle_mass_kg, fat_mass_kg,
		body_fat_percent, waist_cm, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		domain.CoalesceStr(p.ID, domain.DefaultProfileID),
		p.Goal,
		diseases,
		p.SleepProfile.UsualBedtime,
		p.SleepProfile.UsualWakeup,
		boolToInt(p.SleepProfile.IsShiftWorker),
		p.InBody.HeightCm,
		p.InBody.WeightKg,
		nullableFloatToValue(p.InBody.MuscleMassKg),
		nullableFloatToValue(p.InBody.FatMassKg),
		nullableFloatToValue(p.InBody.BodyFatPercent),
		nullableFloatToValue(p.InBody.WaistCm),
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
