package RecordStore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var employeeSchema = Schema{"emp_id", "name", "department"}

func TestLoadMissingFileReturnsEmptyTable(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "employees.csv"), employeeSchema)
	require.NoError(t, err)

	assert.Equal(t, employeeSchema, table.Columns)
	assert.Equal(t, 0, table.Len())
}

func TestLoadTrustsFileHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.csv")
	require.NoError(t, os.WriteFile(path, []byte("emp_id,full_name\nE001,Alice\n"), 0644))

	table, err := Load(path, employeeSchema)
	require.NoError(t, err)

	assert.Equal(t, Schema{"emp_id", "full_name"}, table.Columns)
	assert.Equal(t, [][]string{{"E001", "Alice"}}, table.Rows)
}

func TestLoadStripsByteOrderMark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.csv")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBFemp_id,name,department\n"), 0644))

	table, err := Load(path, employeeSchema)
	require.NoError(t, err)
	assert.Equal(t, employeeSchema, table.Columns)
}

func TestLoadMalformedFile(t *testing.T) {
	cases := map[string]string{
		"empty":  "",
		"ragged": "emp_id,name,department\nE001,Alice\n",
		"quote":  "emp_id,name,department\nE001,\"Alice,Engineering\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "employees.csv")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			_, err := Load(path, employeeSchema)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrParse))

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, path, pe.Path)
		})
	}
}

func TestLoadUnreadablePath(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir, employeeSchema)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestAppendPreservesOrderAndInput(t *testing.T) {
	original := Table{Columns: employeeSchema, Rows: [][]string{{"E001", "Alice", "Engineering"}}}

	updated, err := Append(original, []string{"E002", "Bob", "Sales"})
	require.NoError(t, err)

	assert.Equal(t, 1, original.Len())
	assert.Equal(t, [][]string{
		{"E001", "Alice", "Engineering"},
		{"E002", "Bob", "Sales"},
	}, updated.Rows)
}

func TestAppendRejectsWrongWidth(t *testing.T) {
	_, err := Append(Empty(employeeSchema), []string{"E001", "Alice"})
	assert.True(t, errors.Is(err, ErrRowWidth))
}

func TestPersistWritesHeaderThenRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.csv")

	table, err := Append(Empty(employeeSchema), []string{"E001", "Alice", "Engineering"})
	require.NoError(t, err)
	require.NoError(t, Persist(table, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "emp_id,name,department\nE001,Alice,Engineering\n", string(data))
}

func TestPersistEmptyTableIsHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "overtime.csv")

	require.NoError(t, Persist(Empty(Schema{"emp_id", "date", "hours"}), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "emp_id,date,hours\n", string(data))
}

func TestAppendPersistReloadRoundTrip(t *testing.T) {
	store := NewStore("employees", t.TempDir(), "employees.csv", employeeSchema)

	_, err := store.Add([]string{"E001", "Alice", "Engineering"})
	require.NoError(t, err)

	before, err := store.Load()
	require.NoError(t, err)

	row := []string{"E002", "Bob, Jr.", "Sales \"East\""}
	_, err = store.Add(row)
	require.NoError(t, err)

	after, err := store.Load()
	require.NoError(t, err)

	require.Equal(t, before.Len()+1, after.Len())
	assert.Equal(t, before.Rows, after.Rows[:before.Len()])
	assert.Equal(t, row, after.Rows[after.Len()-1])
}

func TestRepeatedLoadIsIdempotent(t *testing.T) {
	store := NewStore("employees", t.TempDir(), "employees.csv", employeeSchema)
	_, err := store.Add([]string{"E001", "Alice", "Engineering"})
	require.NoError(t, err)

	first, err := store.Load()
	require.NoError(t, err)
	second, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSameEmployeeRowsAreNotMerged(t *testing.T) {
	store := NewStore("overtime", t.TempDir(), "overtime.csv", Schema{"emp_id", "date", "hours"})

	_, err := store.Add([]string{"E001", "2024-03-01", "2"})
	require.NoError(t, err)
	table, err := store.Add([]string{"E001", "2024-03-02", "1.5"})
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"E001", "2024-03-01", "2"},
		{"E001", "2024-03-02", "1.5"},
	}, table.Rows)
}

func TestCountIsExactMatch(t *testing.T) {
	table := Table{
		Columns: Schema{"emp_id", "status"},
		Rows: [][]string{
			{"E001", "Pending"},
			{"E002", "pending"},
			{"E003", "Pending review"},
			{"E004", "Pending"},
		},
	}

	assert.Equal(t, 2, table.Count("status", "Pending"))
	assert.Equal(t, 0, table.Count("missing", "Pending"))
}

func TestRecordsAndValues(t *testing.T) {
	table := Table{Columns: employeeSchema, Rows: [][]string{{"E001", "Alice", "Engineering"}}}

	assert.Equal(t, []map[string]string{{"emp_id": "E001", "name": "Alice", "department": "Engineering"}}, table.Records())
	assert.Equal(t, []string{"E001"}, table.Values("emp_id"))
	assert.Nil(t, table.Values("missing"))
}
