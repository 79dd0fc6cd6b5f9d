package RecordStore

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrParse marks table files that exist but cannot be read as a table.
var ErrParse = errors.New("malformed table file")

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// ParseError reports the file that failed to load and why.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// Load reads the table stored at path. The file's own header row gives the
// columns, even when it disagrees with schema. A missing file is not an
// error: it yields an empty table with schema as its columns.
func Load(path string, schema Schema) (Table, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Empty(schema), nil
	}
	if err != nil {
		return Table{}, &ParseError{Path: path, Err: err}
	}

	table, err := Decode(bytes.NewReader(data))
	if err != nil {
		pe := &ParseError{Path: path, Err: err}
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			pe.Line = csvErr.Line
		}
		return Table{}, pe
	}
	return table, nil
}

// Persist writes t to path, replacing whatever was there.
// The write is not atomic: a crash mid-write can leave a truncated file.
func Persist(t Table, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create table directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open table file: %w", err)
	}

	if err := Encode(file, t); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}

// Decode parses CSV with a header row. Every data row must have as many
// fields as the header.
func Decode(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, errors.New("empty file: no header row found")
	}
	if err != nil {
		return Table{}, err
	}
	header[0] = string(bytes.TrimPrefix([]byte(header[0]), bomUTF8))

	table := Table{Columns: Schema(header), Rows: [][]string{}}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, err
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// Encode writes the header row then every data row as CSV.
func Encode(w io.Writer, t Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns); err != nil {
		return err
	}
	if err := writer.WriteAll(t.Rows); err != nil {
		return err
	}
	return writer.Error()
}
