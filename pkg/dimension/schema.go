package dimension

import (
	"fmt"
	"strings"
)

// Schema describes a dimension table: its name and its ordered column
// definitions in "name:type" format (ClickHouse-flavored types, e.g.
// "date_key:UInt32"). The column order is the CSV column order.
type Schema struct {
	name    string
	colDefs []string
}

func NewSchema(name string, colDefs []string) (*Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("schema name is required")
	}
	names, err := extractColumnNames(colDefs)
	if err != nil {
		return nil, fmt.Errorf("failed to extract column names for %q: %w", name, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("schema %q has no columns", name)
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return nil, fmt.Errorf("schema %q has duplicate column %q", name, n)
		}
		seen[n] = struct{}{}
	}
	return &Schema{name: name, colDefs: colDefs}, nil
}

// MustSchema is for package-level schema declarations with literal column
// defs; it panics on a malformed definition.
func MustSchema(name string, colDefs []string) *Schema {
	s, err := NewSchema(name, colDefs)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Name() string {
	return s.name
}

// TableName returns the conventional warehouse table name, e.g. "dim_date".
func (s *Schema) TableName() string {
	return "dim_" + s.name
}

func (s *Schema) ColumnDefs() []string {
	out := make([]string, len(s.colDefs))
	copy(out, s.colDefs)
	return out
}

// ColumnNames returns the ordered column names, which double as the CSV
// header row.
func (s *Schema) ColumnNames() []string {
	names, _ := extractColumnNames(s.colDefs)
	return names
}

// extractColumnNames extracts column names from a slice of "name:type" format strings
func extractColumnNames(colDefs []string) ([]string, error) {
	names := make([]string, 0, len(colDefs))
	for _, colDef := range colDefs {
		name, err := extractColumnName(colDef)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// extractColumnName extracts the column name from a "name:type" format string
func extractColumnName(colDef string) (string, error) {
	parts := strings.SplitN(colDef, ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid column definition %q: expected format 'name:type'", colDef)
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return "", fmt.Errorf("invalid column definition %q: empty column name", colDef)
	}
	return name, nil
}
