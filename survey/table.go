// Package survey reads the survey response table, joins a validated roster
// onto it, and answers point lookups against the joined result.
package survey

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"surveyid/errors"
)

// Columns names the table columns the toolchain operates on. Headers are
// matched by exact text and come from configuration, never from constants.
type Columns struct {
	// Number is the respondent-number column added by Join
	Number string

	// ID is the student-ID column
	ID string

	// Name is the respondent-name column
	Name string

	// Answers are the free-text answer columns, in display order
	Answers []string
}

// Table is an in-memory tabular dataset with a header row.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ReadTable loads a CSV table from disk. The first record is the header row;
// every data row must have the same number of fields.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open survey table %s", path)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.WrapParse(err, "failed to parse survey table "+path)
	}
	if len(records) == 0 {
		return nil, errors.Newf("survey table %s has no header row", path)
	}

	return &Table{Headers: records[0], Rows: records[1:]}, nil
}

// ColumnIndex returns the position of a header, if present.
func (t *Table) ColumnIndex(header string) (int, bool) {
	for i, h := range t.Headers {
		if h == header {
			return i, true
		}
	}
	return 0, false
}

// Column returns the position of a required header. The error lists the
// headers that are present so a misconfigured column name is easy to spot.
func (t *Table) Column(header string) (int, error) {
	if i, ok := t.ColumnIndex(header); ok {
		return i, nil
	}
	err := errors.Wrapf(errors.ErrMissingColumn, "column %q not in table", header)
	return 0, errors.WithHintf(err, "available columns: %s", strings.Join(t.Headers, ", "))
}

// Encode writes the table as CSV to w.
func (t *Table) Encode(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return errors.Wrap(err, "failed to write header row")
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "failed to write row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush table")
}

// WriteFile persists the table as CSV, creating the parent directory if
// needed. Output is deterministic: identical tables produce identical bytes.
func (t *Table) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create output directory %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create output file %s", path)
	}

	if err := t.Encode(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "failed to close output file %s", path)
}
