package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/antigravity/internal/domain"
)

// enumValue is a pflag.Value that rejects anything outside an enumeration
// at parse time, so bad input never reaches a service.
type enumValue[T ~string] struct {
	target *T
	parse  func(string) (T, error)
	kind   string
}

var _ pflag.Value = (*enumValue[domain.Mood])(nil)

func newEnumValue[T ~string](target *T, kind string, parse func(string) (T, error)) *enumValue[T] {
	return &enumValue[T]{target: target, parse: parse, kind: kind}
}

func (e *enumValue[T]) String() string {
	if e.target == nil {
		return ""
	}
	return string(*e.target)
}

func (e *enumValue[T]) Set(s string) error {
	v, err := e.parse(s)
	if err != nil {
		return err
	}
	*e.target = v
	return nil
}

func (e *enumValue[T]) Type() string { return e.kind }

// enumSliceValue accepts repeated or comma-separated enum values.
type enumSliceValue[T ~string] struct {
	target *[]T
	parse  func(string) (T, error)
	kind   string
}

func newEnumSliceValue[T ~string](target *[]T, kind string, parse func(string) (T, error)) *enumSliceValue[T] {
	return &enumSliceValue[T]{target: target, parse: parse, kind: kind}
}

func (e *enumSliceValue[T]) String() string {
	if e.target == nil {
		return "[]"
	}
	parts := make([]string, len(*e.target))
	for i, v := range *e.target {
		parts[i] = string(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (e *enumSliceValue[T]) Set(s string) error {
	for _, raw := range strings.Split(s, ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		v, err := e.parse(raw)
		if err != nil {
			return err
		}
		*e.target = append(*e.target, v)
	}
	return nil
}

func (e *enumSliceValue[T]) Type() string { return e.kind + "s" }

func enumHelp[T ~string](valid map[T]bool) string {
	vals := make([]string, 0, len(valid))
	for v := range valid {
		vals = append(vals, string(v))
	}
	slices.Sort(vals)
	return strings.Join(vals, "|")
}

// parseIn builds a lenient parser for enumerations that have no dedicated
// domain parser.
func parseIn[T ~string](kind string, valid map[T]bool) func(string) (T, error) {
	return func(s string) (T, error) {
		v := T(strings.ToLower(strings.TrimSpace(s)))
		if !valid[v] {
			return "", fmt.Errorf("%w: %s %q (want %s)", domain.ErrInvalidEnum, kind, s, enumHelp(valid))
		}
		return v, nil
	}
}

var validPortions = map[domain.PortionSize]bool{
	domain.PortionSmall:  true,
	domain.PortionMedium: true,
	domain.PortionLarge:  true,
}

// resolveByPrefix matches input against ids exactly, then as a unique prefix.
func resolveByPrefix(kind, input string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}
	if slices.Contains(ids, input) {
		return input, nil
	}
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}
