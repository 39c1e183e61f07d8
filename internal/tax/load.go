package tax

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"MoneyMarketOptimizer/internal/model"
)

// tablesFile is the on-disk YAML shape:
//
//	federal:
//	  single: [{lower_bound: 0, rate: 0.10}, ...]
//	states:
//	  CA: [{lower_bound: 0, rate: 0.01}, ...]
type tablesFile struct {
	Federal map[string]model.BracketTable `yaml:"federal"`
	States  map[string]model.BracketTable `yaml:"states"`
}

// LoadTables reads bracket schedules from a YAML file and validates them.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bracket tables: %w", err)
	}
	return ParseTables(data)
}

// ParseTables decodes YAML bracket schedules and validates them.
func ParseTables(data []byte) (*Tables, error) {
	var raw tablesFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse bracket tables: %w", err)
	}

	t := &Tables{
		Federal: make(map[model.FilingStatus]model.BracketTable, len(raw.Federal)),
		States:  make(map[model.Jurisdiction]model.BracketTable, len(raw.States)),
	}
	for name, table := range raw.Federal {
		status, err := model.ParseFilingStatus(name)
		if err != nil {
			return nil, fmt.Errorf("federal tables: %w", err)
		}
		t.Federal[status] = table
	}
	for code, table := range raw.States {
		j, err := model.ParseState(code)
		if err != nil {
			return nil, fmt.Errorf("state tables: %w", err)
		}
		t.States[j] = table
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("validate bracket tables: %w", err)
	}
	return t, nil
}
