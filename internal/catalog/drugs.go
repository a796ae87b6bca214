package catalog

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/antigravity/internal/domain"
)

// Drug is a reference-table entry used to pre-fill medication safety tags.
type Drug struct {
	ID           string                 `yaml:"id"`
	Name         string                 `yaml:"name"`
	NameKo       string                 `yaml:"name_ko"`
	ClassKo      string                 `yaml:"class_ko"`
	Tags         []domain.MedicationTag `yaml:"tags"`
	CommonUseKo  string                 `yaml:"common_use_ko"`
	ExerciseNote string                 `yaml:"exercise_note_ko"`
	MealNote     string                 `yaml:"meal_note_ko"`
	GeneralNote  string                 `yaml:"general_note_ko"`
}

type drugDoc struct {
	Drugs []Drug `yaml:"drugs"`
}

type DrugCatalog struct {
	drugs []Drug
}

func LoadDrugs(data []byte) (*DrugCatalog, error) {
	var doc drugDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse drugs: %w", err)
	}
	seen := make(map[string]bool, len(doc.Drugs))
	for _, d := range doc.Drugs {
		if d.ID == "" || d.Name == "" {
			return nil, fmt.Errorf("drug entry missing id or name: %+v", d)
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("duplicate drug id %q", d.ID)
		}
		seen[d.ID] = true
		for _, t := range d.Tags {
			if !t.Valid() {
				return nil, fmt.Errorf("drug %s: %w", d.ID, &domain.ValidationError{
					Field: "tags", Value: string(t), Err: domain.ErrInvalidEnum,
				})
			}
		}
	}
	return &DrugCatalog{drugs: doc.Drugs}, nil
}

var (
	drugsOnce    sync.Once
	defaultDrugs *DrugCatalog
)

// DefaultDrugs returns the embedded drug table.
func DefaultDrugs() *DrugCatalog {
	drugsOnce.Do(func() {
		data, err := dataFS.ReadFile("drugs.yaml")
		if err != nil {
			panic(fmt.Sprintf("catalog: %v", err))
		}
		dc, err := LoadDrugs(data)
		if err != nil {
			panic(fmt.Sprintf("catalog: %v", err))
		}
		defaultDrugs = dc
	})
	return defaultDrugs
}

func (d Drug) clone() Drug {
	d.Tags = slices.Clone(d.Tags)
	return d
}

// Search matches query case-insensitively against both names and the drug class.
// An empty query returns nothing.
func (dc *DrugCatalog) Search(query string) []Drug {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Drug
	for _, d := range dc.drugs {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(d.NameKo, q) ||
			strings.Contains(strings.ToLower(d.ClassKo), q) {
			out = append(out, d.clone())
		}
	}
	return out
}

// ByName finds an exact, case-insensitive match on the English or Korean name.
func (dc *DrugCatalog) ByName(name string) (Drug, bool) {
	n := strings.TrimSpace(name)
	for _, d := range dc.drugs {
		if strings.EqualFold(d.Name, n) || d.NameKo == n {
			return d.clone(), true
		}
	}
	return Drug{}, false
}

func (dc *DrugCatalog) ByID(id string) (Drug, bool) {
	for _, d := range dc.drugs {
		if d.ID == id {
			return d.clone(), true
		}
	}
	return Drug{}, false
}

func (dc *DrugCatalog) ByTag(tag domain.MedicationTag) []Drug {
	var out []Drug
	for _, d := range dc.drugs {
		if slices.Contains(d.Tags, tag) {
			out = append(out, d.clone())
		}
	}
	return out
}

func (dc *DrugCatalog) All() []Drug {
	out := make([]Drug, len(dc.drugs))
	for i, d := range dc.drugs {
		out[i] = d.clone()
	}
	return out
}
