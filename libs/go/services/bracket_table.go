package services

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/asatex/kyuyokeisan-api/libs/go/types/business"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// BracketTable is an in-memory rate table. It is immutable after construction.
type BracketTable struct {
	Name          string
	EffectiveFrom string
	brackets      []business.PremiumBracket
}

type bracketTableFile struct {
	Name          string             `yaml:"name"`
	EffectiveFrom string             `yaml:"effective_from"`
	Brackets      []bracketTableItem `yaml:"brackets"`
}

type bracketTableItem struct {
	Grade        int32  `yaml:"grade"`
	MinAmount    int64  `yaml:"min_amount"`
	MaxAmount    int64  `yaml:"max_amount"`
	HealthNoCare string `yaml:"health_no_care"`
	HealthCare   string `yaml:"health_care"`
	Pension      string `yaml:"pension"`
}

// LoadBracketTable reads a YAML rate table from disk.
func LoadBracketTable(path string) (*BracketTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rate table %s", path)
	}
	table, err := ParseBracketTable(data)
	if err != nil {
		return nil, errors.Wrapf(err, "rate table %s", path)
	}
	return table, nil
}

// ParseBracketTable decodes a YAML rate table.
func ParseBracketTable(data []byte) (*BracketTable, error) {
	var file bracketTableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to parse rate table")
	}

	brackets := make([]business.PremiumBracket, 0, len(file.Brackets))
	for i, item := range file.Brackets {
		bracket, err := item.toBracket(int64(i + 1))
		if err != nil {
			return nil, err
		}
		brackets = append(brackets, bracket)
	}

	table, err := NewBracketTable(brackets)
	if err != nil {
		return nil, err
	}
	table.Name = file.Name
	table.EffectiveFrom = file.EffectiveFrom
	return table, nil
}

func (item bracketTableItem) toBracket(id int64) (business.PremiumBracket, error) {
	amounts := make([]decimal.Decimal, 3)
	for i, field := range []struct{ name, value string }{
		{"health_no_care", item.HealthNoCare},
		{"health_care", item.HealthCare},
		{"pension", item.Pension},
	} {
		d, err := decimal.NewFromString(field.value)
		if err != nil {
			return business.PremiumBracket{}, errors.Wrapf(ErrInvalidBracket, "grade %d %s %q", item.Grade, field.name, field.value)
		}
		amounts[i] = d
	}

	return business.PremiumBracket{
		ID:           id,
		Grade:        item.Grade,
		MinAmount:    item.MinAmount,
		MaxAmount:    item.MaxAmount,
		HealthNoCare: amounts[0],
		HealthCare:   amounts[1],
		Pension:      amounts[2],
	}, nil
}

// NewBracketTable builds a table from brackets in any order. Empty ranges,
// overlapping ranges, negative totals and duplicate grades fail the load. A bracket whose care
// premium is below its no-care premium is kept so the calculator can reject it
// per request.
func NewBracketTable(brackets []business.PremiumBracket) (*BracketTable, error) {
	if len(brackets) == 0 {
		return nil, errors.Wrap(ErrInvalidBracket, "rate table has no brackets")
	}

	sorted := make([]business.PremiumBracket, len(brackets))
	copy(sorted, brackets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinAmount < sorted[j].MinAmount
	})

	if dups := lo.FindDuplicatesBy(sorted, func(b business.PremiumBracket) int32 { return b.Grade }); len(dups) > 0 {
		return nil, errors.Wrapf(ErrInvalidBracket, "grade %d appears more than once", dups[0].Grade)
	}

	for i, b := range sorted {
		if b.MinAmount >= b.MaxAmount {
			return nil, errors.Wrapf(ErrInvalidBracket, "grade %d has empty range [%d, %d)", b.Grade, b.MinAmount, b.MaxAmount)
		}
		if b.HealthNoCare.IsNegative() || b.HealthCare.IsNegative() || b.Pension.IsNegative() {
			return nil, errors.Wrapf(ErrInvalidBracket, "grade %d has a negative premium total", b.Grade)
		}
		if i > 0 && sorted[i-1].MaxAmount > b.MinAmount {
			return nil, errors.Wrapf(ErrInvalidBracket, "grade %d overlaps grade %d", b.Grade, sorted[i-1].Grade)
		}
	}

	return &BracketTable{brackets: sorted}, nil
}

// FindBracket returns the bracket whose half-open range contains amount
func (t *BracketTable) FindBracket(_ context.Context, amount int64) (*business.PremiumBracket, error) {
	i := sort.Search(len(t.brackets), func(i int) bool {
		return t.brackets[i].MaxAmount > amount
	})
	if i == len(t.brackets) || !t.brackets[i].Contains(amount) {
		return nil, NewBracketNotFoundError(amount)
	}
	bracket := t.brackets[i]
	return &bracket, nil
}

// ListBrackets returns a copy of the table ordered by lower bound
func (t *BracketTable) ListBrackets(_ context.Context) ([]business.PremiumBracket, error) {
	out := make([]business.PremiumBracket, len(t.brackets))
	copy(out, t.brackets)
	return out, nil
}

// Ping always succeeds; the table lives in memory.
func (t *BracketTable) Ping(_ context.Context) error {
	return nil
}

// Coverage is the salary range spanned by the table, gaps included.
func (t *BracketTable) Coverage() (lower, upper int64) {
	return t.brackets[0].MinAmount, t.brackets[len(t.brackets)-1].MaxAmount
}

// String describes the table for startup logs.
func (t *BracketTable) String() string {
	lower, upper := t.Coverage()
	return fmt.Sprintf("%s (%s): %d brackets covering [%d, %d)", t.Name, t.EffectiveFrom, len(t.brackets), lower, upper)
}
