// Package catalog loads the static fund catalog a process serves from.
package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"FundPicker/internal/model"

	"github.com/rs/zerolog"
)

// MaxNameLength bounds fund names so a page of results fits in one chat message.
const MaxNameLength = 120

// Source supplies the raw fund catalog.
type Source interface {
	Load() ([]model.Fund, error)
	Name() string
}

// StaticSource serves a fixed in-memory list.
type StaticSource struct {
	Label string
	Funds []model.Fund
}

func (s *StaticSource) Name() string {
	if s.Label == "" {
		return "static"
	}
	return s.Label
}

func (s *StaticSource) Load() ([]model.Fund, error) {
	out := make([]model.Fund, len(s.Funds))
	copy(out, s.Funds)
	return out, nil
}

// Load reads src and validates every entry. Categories are normalised to
// their canonical spelling; catalog order is preserved.
func Load(src Source, log zerolog.Logger) ([]model.Fund, error) {
	raw, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", src.Name(), err)
	}
	funds, err := Validate(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", src.Name(), err)
	}

	seen := make(map[string]struct{}, len(funds))
	for _, f := range funds {
		if _, dup := seen[f.Name]; dup {
			log.Warn().Str("fund", f.Name).Msg("duplicate fund name in catalog")
		}
		seen[f.Name] = struct{}{}
	}

	log.Info().Str("source", src.Name()).Int("funds", len(funds)).Msg("catalog loaded")
	return funds, nil
}

// Validate checks names and categories and returns a normalised copy.
func Validate(raw []model.Fund) ([]model.Fund, error) {
	funds := make([]model.Fund, 0, len(raw))
	for i, f := range raw {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return nil, fmt.Errorf("fund #%d: name is required", i+1)
		}
		if n := utf8.RuneCountInString(name); n > MaxNameLength {
			return nil, fmt.Errorf("fund #%d: name is %d characters, limit is %d", i+1, n, MaxNameLength)
		}
		cat, err := model.ParseCategory(string(f.Category))
		if err != nil {
			return nil, fmt.Errorf("fund %q: %w", name, err)
		}
		funds = append(funds, model.Fund{Name: name, Category: cat, YearlyROI: f.YearlyROI})
	}
	return funds, nil
}
