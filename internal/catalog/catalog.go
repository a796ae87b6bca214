// Package catalog holds the read-only reference data: routine templates and
// the drug table. Both are parsed once per process from embedded YAML.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/antigravity/internal/domain"
)

//go:embed routines.yaml drugs.yaml
var dataFS embed.FS

// ErrEmptyCatalog is a startup defect: the engine needs at least one template.
var ErrEmptyCatalog = errors.New("routine catalog is empty")

type routineDoc struct {
	Routines []domain.RoutineTemplate `yaml:"routines"`
}

type key struct {
	category domain.Category
	goal     domain.Goal
	level    domain.Level
}

// Catalog is an immutable routine table. Accessors hand out copies.
type Catalog struct {
	routines []domain.RoutineTemplate
	byKey    map[key]int
	byID     map[string]int
}

// Load parses a routine document.
func Load(data []byte) (*Catalog, error) {
	var doc routineDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse routines: %w", err)
	}
	if len(doc.Routines) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		routines: doc.Routines,
		byKey:    make(map[key]int, len(doc.Routines)),
		byID:     make(map[string]int, len(doc.Routines)),
	}
	for i := range c.routines {
		r := &c.routines[i]
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("routine %d (%s): %w", i, r.ID, err)
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate routine id %q", r.ID)
		}
		c.byID[r.ID] = i
		k := key{r.Category, r.Goal, r.Level}
		// First entry wins for a key, matching FirstWhere order.
		if _, ok := c.byKey[k]; !ok {
			c.byKey[k] = i
		}
	}
	return c, nil
}

// LoadFile reads a routine document from disk, replacing the embedded table.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read routine catalog: %w", err)
	}
	return Load(data)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded routine catalog. It panics if the embedded
// data is invalid, which can only happen with a broken build.
func Default() *Catalog {
	defaultOnce.Do(func() {
		data, err := dataFS.ReadFile("routines.yaml")
		if err != nil {
			panic(fmt.Sprintf("catalog: %v", err))
		}
		c, err := Load(data)
		if err != nil {
			panic(fmt.Sprintf("catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func (c *Catalog) Len() int { return len(c.routines) }

// Find returns the template for an exact (category, goal, level) key.
func (c *Catalog) Find(category domain.Category, goal domain.Goal, level domain.Level) (domain.RoutineTemplate, bool) {
	i, ok := c.byKey[key{category, goal, level}]
	if !ok {
		return domain.RoutineTemplate{}, false
	}
	return c.routines[i].Clone(), true
}

// FirstWhere returns the first template, in catalog order, matching pred.
func (c *Catalog) FirstWhere(pred func(*domain.RoutineTemplate) bool) (domain.RoutineTemplate, bool) {
	for i := range c.routines {
		if pred(&c.routines[i]) {
			return c.routines[i].Clone(), true
		}
	}
	return domain.RoutineTemplate{}, false
}

// First returns the first template. The catalog is never empty.
func (c *Catalog) First() domain.RoutineTemplate {
	return c.routines[0].Clone()
}

func (c *Catalog) ByID(id string) (domain.RoutineTemplate, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.RoutineTemplate{}, false
	}
	return c.routines[i].Clone(), true
}

func (c *Catalog) ByCategory(category domain.Category) []domain.RoutineTemplate {
	var out []domain.RoutineTemplate
	for i := range c.routines {
		if c.routines[i].Category == category {
			out = append(out, c.routines[i].Clone())
		}
	}
	return out
}

func (c *Catalog) All() []domain.RoutineTemplate {
	out := make([]domain.RoutineTemplate, len(c.routines))
	for i := range c.routines {
		out[i] = c.routines[i].Clone()
	}
	return out
}
