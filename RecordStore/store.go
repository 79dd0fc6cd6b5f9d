package RecordStore

import (
	"path/filepath"
)

// Store binds one table file to the schema it is initialized with.
// It holds no rows: every call goes back to the file.
type Store struct {
	Name   string
	Path   string
	Schema Schema
}

// NewStore returns the store for file inside dir.
func NewStore(name, dir, file string, schema Schema) Store {
	return Store{Name: name, Path: filepath.Join(dir, file), Schema: schema}
}

// Load reads the current table.
func (s Store) Load() (Table, error) {
	return Load(s.Path, s.Schema)
}

// Persist overwrites the file with t.
func (s Store) Persist(t Table) error {
	return Persist(t, s.Path)
}

// Add loads the table, appends row and rewrites the file in full.
// Two concurrent Adds can lose one of the rows.
func (s Store) Add(row []string) (Table, error) {
	table, err := s.Load()
	if err != nil {
		return Table{}, err
	}

	table, err = Append(table, row)
	if err != nil {
		return Table{}, err
	}

	if err := s.Persist(table); err != nil {
		return Table{}, err
	}
	return table, nil
}
