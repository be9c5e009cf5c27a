package reftable

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/iho/tbrecon/internal/domain"
)

// yamlEntry mirrors one reference line in a YAML profile. Expected is kept
// as a string so that amounts survive the trip without float rounding; an
// omitted or empty value means "not collected".
type yamlEntry struct {
	Name       string `yaml:"name"`
	TBCode     string `yaml:"tb_code"`
	Expected   string `yaml:"expected,omitempty"`
	SourceFile string `yaml:"source_file"`
}

type yamlProfile struct {
	Entries []yamlEntry `yaml:"entries"`
}

// LoadFile reads a reference-table profile from a YAML file so tables can
// vary per company or month without code changes.
func LoadFile(path string) (*domain.ReferenceTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference table: %w", err)
	}
	return Load(data)
}

// Load parses a YAML reference-table profile.
func Load(data []byte) (*domain.ReferenceTable, error) {
	var profile yamlProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parse reference table: %w", err)
	}
	if len(profile.Entries) == 0 {
		return nil, fmt.Errorf("reference table has no entries")
	}

	table := &domain.ReferenceTable{
		Entries: make([]domain.ReferenceEntry, 0, len(profile.Entries)),
	}
	for i, e := range profile.Entries {
		if e.Name == "" || e.TBCode == "" {
			return nil, fmt.Errorf("reference table entry %d: name and tb_code are required", i)
		}

		var exp decimal.NullDecimal
		if e.Expected != "" {
			d, err := decimal.NewFromString(e.Expected)
			if err != nil {
				return nil, fmt.Errorf("reference table entry %q: invalid expected amount: %w", e.Name, err)
			}
			exp = decimal.NullDecimal{Decimal: d, Valid: true}
		}

		table.Entries = append(table.Entries, domain.ReferenceEntry{
			Name:       e.Name,
			TBCode:     domain.NormalizeCode(e.TBCode),
			Expected:   exp,
			SourceFile: e.SourceFile,
		})
	}

	return table, nil
}
