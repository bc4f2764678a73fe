package domain

import "fmt"

// Column is one named numeric series extracted from a data block.
type Column struct {
	Name   string    `json:"name"`
	Unit   string    `json:"unit,omitempty"`
	Values []float64 `json:"values"`
}

// Table is an ordered collection of equal-length numeric columns. Column
// order matches the source file's header order.
type Table struct {
	Columns []Column `json:"columns"`
}

// Rows returns the number of data rows. All columns share this length.
func (t *Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Column returns the values of the named column, or nil if absent.
func (t *Table) Column(name string) []float64 {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return t.Columns[i].Values
		}
	}
	return nil
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.Column(name) != nil
}

// ColumnNames returns all column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i := range t.Columns {
		names[i] = t.Columns[i].Name
	}
	return names
}

// AppendColumn adds a column to the table. It fails if the length does not
// match the existing row count.
func (t *Table) AppendColumn(c Column) error {
	if len(t.Columns) > 0 && len(c.Values) != t.Rows() {
		return fmt.Errorf("column %s has %d values, table has %d rows", c.Name, len(c.Values), t.Rows())
	}
	t.Columns = append(t.Columns, c)
	return nil
}
