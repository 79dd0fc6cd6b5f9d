package RecordStore

import (
	"errors"
	"fmt"
)

// ErrRowWidth is returned when a row does not supply exactly one value per column.
var ErrRowWidth = errors.New("row width does not match table columns")

// Schema is the fixed, ordered list of column names for one table.
type Schema []string

// Table is an ordered sequence of rows sharing one schema.
// Insertion order is the only ordering a table has (most recent last).
type Table struct {
	Columns Schema     `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Empty returns a header-only table for the given schema.
func Empty(schema Schema) Table {
	columns := make(Schema, len(schema))
	copy(columns, schema)
	return Table{Columns: columns, Rows: [][]string{}}
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Column returns the index of the named column, or -1.
func (t Table) Column(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Count returns how many rows hold exactly value in the named column.
// A column missing from the table counts zero.
func (t Table) Count(column, value string) int {
	idx := t.Column(column)
	if idx < 0 {
		return 0
	}

	count := 0
	for _, row := range t.Rows {
		if idx < len(row) && row[idx] == value {
			count++
		}
	}
	return count
}

// Values returns the named column's values in row order.
func (t Table) Values(column string) []string {
	idx := t.Column(column)
	if idx < 0 {
		return nil
	}

	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row[idx])
	}
	return values
}

// Records returns the rows as column -> value maps, in row order.
func (t Table) Records() []map[string]string {
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make(map[string]string, len(t.Columns))
		for i, c := range t.Columns {
			record[c] = row[i]
		}
		records = append(records, record)
	}
	return records
}

// Append returns a new table equal to t with row added as the last entry.
// t itself is left untouched.
func Append(t Table, row []string) (Table, error) {
	if len(row) != len(t.Columns) {
		return t, fmt.Errorf("%w: got %d values for %d columns", ErrRowWidth, len(row), len(t.Columns))
	}

	rows := make([][]string, len(t.Rows), len(t.Rows)+1)
	copy(rows, t.Rows)

	added := make([]string, len(row))
	copy(added, row)
	rows = append(rows, added)

	return Table{Columns: t.Columns, Rows: rows}, nil
}
