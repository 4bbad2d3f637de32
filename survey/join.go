package survey

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"surveyid/mapping"
)

// UnmappedRecord identifies a survey row whose student ID has no roster entry.
type UnmappedRecord struct {
	ID   string
	Name string
}

// UnmappedError reports every survey row that could not be resolved against
// the roster. Like roster validation, the join never stops at the first
// offender; the editor gets the full list in one pass.
type UnmappedError struct {
	Records []UnmappedRecord
}

func (e *UnmappedError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d survey rows have no roster entry:", len(e.Records))
	for _, r := range e.Records {
		fmt.Fprintf(&b, "\n  %s (%s)", r.ID, r.Name)
	}
	return b.String()
}

// Join resolves every survey row's student ID against the roster and returns
// a new table with the respondent number as the first column, rows sorted
// ascending by that number.
//
// Student IDs are trimmed before lookup, matching the trimming applied to
// roster keys. The sort is stable: rows that resolve to the same number (a
// table with duplicate student-ID rows) keep their original relative order.
// An input column already named cols.Number is replaced rather than
// duplicated. The input table is not modified.
func Join(t *Table, roster *mapping.Roster, cols Columns) (*Table, error) {
	idIdx, err := t.Column(cols.ID)
	if err != nil {
		return nil, err
	}
	nameIdx, err := t.Column(cols.Name)
	if err != nil {
		return nil, err
	}

	type numbered struct {
		number int
		row    []string
	}

	resolved := make([]numbered, 0, len(t.Rows))
	var unmapped []UnmappedRecord

	for _, row := range t.Rows {
		id := strings.TrimSpace(row[idIdx])
		number, ok := roster.Lookup(id)
		if !ok {
			unmapped = append(unmapped, UnmappedRecord{ID: id, Name: row[nameIdx]})
			continue
		}
		resolved = append(resolved, numbered{number: number, row: row})
	}

	if len(unmapped) > 0 {
		return nil, &UnmappedError{Records: unmapped}
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].number < resolved[j].number
	})

	// Re-project with the number column first. If the input already carried
	// a column under that header, drop it in favor of the resolved values.
	oldNumberIdx := -1
	if i, ok := t.ColumnIndex(cols.Number); ok {
		oldNumberIdx = i
	}

	headers := make([]string, 0, len(t.Headers)+1)
	headers = append(headers, cols.Number)
	for j, h := range t.Headers {
		if j == oldNumberIdx {
			continue
		}
		headers = append(headers, h)
	}

	rows := make([][]string, 0, len(resolved))
	for _, n := range resolved {
		row := make([]string, 0, len(headers))
		row = append(row, strconv.Itoa(n.number))
		for j, cell := range n.row {
			if j == oldNumberIdx {
				continue
			}
			if j == idIdx {
				cell = strings.TrimSpace(cell)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}, nil
}
