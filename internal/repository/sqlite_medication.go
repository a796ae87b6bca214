package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/antigravity/internal/db"
	"github.com/alexanderramin/antigravity/internal/domain"
)

type SQLiteMedicationRepo struct {
	db db.DBTX
}

func NewSQLiteMedicationRepo(conn db.DBTX) *SQLiteMedicationRepo {
	return &SQLiteMedicationRepo{db: conn}
}

const medicationColumns = `id, name, drug_id, tags_json, dosage, frequency, confirmed_by_user, added_via, created_at`

func (r *SQLiteMedicationRepo) Create(ctx context.Context, m *domain.MedicationEntry) error {
	tags, err := encodeTags(m.Tags)
	if err != nil {
		return err
	}
	query := `INSERT INTO medications (` + medicationColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		m.ID,
		m.Name,
		m.DrugID,
		tags,
		m.Dosage,
		m.Frequency,
		boolToInt(m.ConfirmedByUser),
		domain.CoalesceStr(string(m.AddedVia), string(domain.SourceManual)),
		formatTime(m.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting medication: %w", err)
	}
	return nil
}

func (r *SQLiteMedicationRepo) GetByID(ctx context.Context, id string) (*domain.MedicationEntry, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications WHERE id = ?`
	m, err := scanMedication(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("medication %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return m, nil
}

func (r *SQLiteMedicationRepo) List(ctx context.Context) ([]*domain.MedicationEntry, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing medications: %w", err)
	}
	defer rows.Close()

	var out []*domain.MedicationEntry
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update rewrites the editable fields. The id, source and creation time
// stay as first recorded.
func (r *SQLiteMedicationRepo) Update(ctx context.Context, m *domain.MedicationEntry) error {
	tags, err := encodeTags(m.Tags)
	if err != nil {
		return err
	}
	query := `UPDATE medications SET name = ?, drug_id = ?, tags_json = ?, dosage = ?,
		frequency = ?, confirmed_by_user = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		m.Name,
		m.DrugID,
		tags,
		m.Dosage,
		m.Frequency,
		boolToInt(m.ConfirmedByUser),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating medication: %w", err)
	}
	return requireAffected(res, "medication "+m.ID)
}

func (r *SQLiteMedicationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting medication: %w", err)
	}
	return requireAffected(res, "medication "+id)
}

func scanMedication(s rowScanner) (*domain.MedicationEntry, error) {
	var (
		m         domain.MedicationEntry
		tagsJSON  string
		confirmed int
		createdAt string
	)
	err := s.Scan(&m.ID, &m.Name, &m.DrugID, &tagsJSON, &m.Dosage, &m.Frequency, &confirmed, &m.AddedVia, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning medication: %w", err)
	}
	if m.Tags, err = decodeTags[domain.MedicationTag](tagsJSON); err != nil {
		return nil, fmt.Errorf("medication %s: %w", m.ID, err)
	}
	m.ConfirmedByUser = intToBool(confirmed)
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("medication created_at: %w", err)
	}
	return &m, nil
}

// requireAffected turns a no-op UPDATE or DELETE into ErrNotFound.
func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
