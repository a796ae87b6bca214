package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/antigravity/internal/domain"
)

func TestDefault_HasFullGrid(t *testing.T) {
	c := Default()
	require.Equal(t, 36, c.Len())

	cats := []domain.Category{domain.CategoryPH, domain.CategorySO, domain.CategoryMB, domain.CategoryTF}
	goals := []domain.Goal{domain.GoalDiet, domain.GoalMuscleGain, domain.GoalStressRelief}
	levels := []domain.Level{domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced}
	for _, cat := range cats {
		for _, g := range goals {
			for _, l := range levels {
				r, ok := c.Find(cat, g, l)
				require.True(t, ok, "missing %s/%s/%s", cat, g, l)
				assert.Equal(t, cat, r.Category)
				assert.NotEmpty(t, r.Main)
			}
		}
	}
}

func TestDefault_IsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestFind_UnknownKey(t *testing.T) {
	_, ok := Default().Find(domain.CategoryPH, domain.GoalWeightGain, domain.LevelBeginner)
	assert.False(t, ok)
}

func TestFind_ReturnsCopy(t *testing.T) {
	c := Default()
	r, ok := c.Find(domain.CategoryPH, domain.GoalDiet, domain.LevelAdvanced)
	require.True(t, ok)
	require.NotEmpty(t, r.ContraindicationTags)
	r.ContraindicationTags[0] = domain.DiseaseObesity
	r.Main = nil

	again, _ := c.Find(domain.CategoryPH, domain.GoalDiet, domain.LevelAdvanced)
	assert.Equal(t, domain.DiseaseHeartFailure, again.ContraindicationTags[0])
	assert.NotEmpty(t, again.Main)
}

func TestByCategoryAndID(t *testing.T) {
	c := Default()
	tf := c.ByCategory(domain.CategoryTF)
	assert.Len(t, tf, 9)

	r, ok := c.ByID("routine-MB-stress_relief-beginner")
	require.True(t, ok)
	assert.Equal(t, domain.IntensityLow, r.Intensity)

	_, ok = c.ByID("routine-nope")
	assert.False(t, ok)
	assert.Len(t, c.All(), 36)
}

func TestFirstWhere(t *testing.T) {
	r, ok := Default().FirstWhere(func(r *domain.RoutineTemplate) bool {
		return r.Category == domain.CategorySO && r.Level == domain.LevelAdvanced
	})
	require.True(t, ok)
	assert.Equal(t, "routine-SO-diet-advanced", r.ID)
}

func TestLoad_Empty(t *testing.T) {
	_, err := Load([]byte("routines: []\n"))
	assert.True(t, errors.Is(err, ErrEmptyCatalog))

	_, err = Load([]byte(""))
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestLoad_RejectsUnknownEnum(t *testing.T) {
	doc := `
routines:
  - id: r1
    category: XX
    goal: diet
    level: beginner
    intensity: low
`
	_, err := Load([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidEnum)
}

func TestLoad_RejectsDuplicateID(t *testing.T) {
	doc := `
routines:
  - {id: r1, category: PH, goal: diet, level: beginner, intensity: low}
  - {id: r1, category: SO, goal: diet, level: beginner, intensity: low}
`
	_, err := Load([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routines.yaml")
	doc := `
routines:
  - id: custom
    category: MB
    goal: stress_relief
    level: beginner
    name: Walk
    intensity: low
    contraindications: [hypertension]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	first := c.First()
	assert.True(t, first.IsContraindicatedFor(domain.DiseaseHypertension))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
