package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/antigravity/internal/catalog"
	"github.com/alexanderramin/antigravity/internal/db"
	"github.com/alexanderramin/antigravity/internal/domain"
	"github.com/alexanderramin/antigravity/internal/repository"
)

type medicationService struct {
	meds     repository.MedicationRepo
	drugs    *catalog.DrugCatalog
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewMedicationService(meds repository.MedicationRepo, drugs *catalog.DrugCatalog, uow db.UnitOfWork, observers ...UseCaseObserver) MedicationService {
	return &medicationService{
		meds:     meds,
		drugs:    drugs,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

// Add registers a medication and invalidates today's plan.
func (s *medicationService) Add(ctx context.Context, m *domain.MedicationEntry) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "add-medication", startedAt, err, map[string]any{
			"name": m.Name,
			"tags": len(m.Tags),
		})
	}()

	if err = m.Validate(); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.AddedVia == "" {
		m.AddedVia = domain.SourceManual
	}
	now := s.now()
	m.CreatedAt = now.UTC()

	return db.Scoped(ctx, s.uow, repository.NewStore, func(ctx context.Context, tx *repository.Store) error {
		if err := tx.Medications.Create(ctx, m); err != nil {
			return err
		}
		return tx.InvalidatePlan(ctx, dayKey(now), now.UTC())
	})
}

// AddFromCatalog resolves m.Name against the drug table and stores it with
// the table's canonical name, id and safety tags. Dosage and frequency are kept.
func (s *medicationService) AddFromCatalog(ctx context.Context, m *domain.MedicationEntry) error {
	drug, ok := s.drugs.ByName(m.Name)
	if !ok {
		return fmt.Errorf("drug %q: %w", m.Name, repository.ErrNotFound)
	}
	m.Name = drug.Name
	m.DrugID = drug.ID
	m.Tags = slices.Clone(drug.Tags)
	m.ConfirmedByUser = true
	m.AddedVia = domain.SourceSearch
	return s.Add(ctx, m)
}

func (s *medicationService) List(ctx context.Context) ([]*domain.MedicationEntry, error) {
	return s.meds.List(ctx)
}

// Update rewrites the name, dosage, frequency and tags of a stored
// medication. Editing the tags by hand detaches the entry from the drug
// table, since they no longer match the table's safety tags.
func (s *medicationService) Update(ctx context.Context, m *domain.MedicationEntry) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "update-medication", startedAt, err, map[string]any{
			"id":   m.ID,
			"tags": len(m.Tags),
		})
	}()

	if err = m.Validate(); err != nil {
		return err
	}
	now := s.now()

	return db.Scoped(ctx, s.uow, repository.NewStore, func(ctx context.Context, tx *repository.Store) error {
		prev, err := tx.Medications.GetByID(ctx, m.ID)
		if err != nil {
			return err
		}
		if prev.DrugID != "" && !slices.Equal(prev.Tags, m.Tags) {
			m.DrugID = ""
		}
		if err := tx.Medications.Update(ctx, m); err != nil {
			return err
		}
		return tx.InvalidatePlan(ctx, dayKey(now), now.UTC())
	})
}

func (s *medicationService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "delete-medication", startedAt, err, map[string]any{"id": id})
	}()

	now := s.now()
	return db.Scoped(ctx, s.uow, repository.NewStore, func(ctx context.Context, tx *repository.Store) error {
		if err := tx.Medications.Delete(ctx, id); err != nil {
			return err
		}
		return tx.InvalidatePlan(ctx, dayKey(now), now.UTC())
	})
}

func (s *medicationService) SearchDrugs(query string) []catalog.Drug {
	return s.drugs.Search(query)
}
