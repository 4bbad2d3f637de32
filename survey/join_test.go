package survey

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyid/errors"
	"surveyid/mapping"
)

var testColumns = Columns{
	Number:  "Respondent No.",
	ID:      "Student ID",
	Name:    "Name",
	Answers: []string{"E1", "E2", "E3"},
}

func testRoster(t *testing.T, numbers map[string]int) *mapping.Roster {
	t.Helper()
	return &mapping.Roster{Numbers: numbers, MaxNumber: 18}
}

func surveyTable() *Table {
	return &Table{
		Headers: []string{"Student ID", "Name", "E1", "E2", "E3"},
		Rows: [][]string{
			{"S003", "Chiba", "good", "", "more docs"},
			{" S001 ", "Aoki", "liked the hints", "slow at times", ""},
			{"S002", "Baba", "", "   ", "nothing"},
		},
	}
}

func TestJoin(t *testing.T) {
	roster := testRoster(t, map[string]int{"S001": 1, "S002": 2, "S003": 3})

	joined, err := Join(surveyTable(), roster, testColumns)
	require.NoError(t, err)

	// Number column promoted to the front, original order preserved after it
	assert.Equal(t, []string{"Respondent No.", "Student ID", "Name", "E1", "E2", "E3"}, joined.Headers)

	// Rows sorted ascending by respondent number
	require.Len(t, joined.Rows, 3)
	assert.Equal(t, []string{"1", "S001", "Aoki", "liked the hints", "slow at times", ""}, joined.Rows[0])
	assert.Equal(t, []string{"2", "S002", "Baba", "", "   ", "nothing"}, joined.Rows[1])
	assert.Equal(t, []string{"3", "S003", "Chiba", "good", "", "more docs"}, joined.Rows[2])
}

func TestJoin_TrimsIDsSymmetrically(t *testing.T) {
	// Row carries " S001 ", roster key is "S001": the join must succeed and
	// the output ID cell is the trimmed form.
	roster := testRoster(t, map[string]int{"S001": 1})
	table := &Table{
		Headers: []string{"Student ID", "Name"},
		Rows:    [][]string{{" S001 ", "Aoki"}},
	}

	joined, err := Join(table, roster, testColumns)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "S001", "Aoki"}, joined.Rows[0])
}

func TestJoin_UnmappedRowsBatched(t *testing.T) {
	roster := testRoster(t, map[string]int{"S002": 2})

	_, err := Join(surveyTable(), roster, testColumns)
	require.Error(t, err)

	var uerr *UnmappedError
	require.ErrorAs(t, err, &uerr)
	require.Len(t, uerr.Records, 2, "every unmapped row must be reported, not just the first")

	msg := err.Error()
	assert.Contains(t, msg, "S001")
	assert.Contains(t, msg, "Aoki")
	assert.Contains(t, msg, "S003")
	assert.Contains(t, msg, "Chiba")
	assert.NotContains(t, msg, "Baba")
}

func TestJoin_StableForEqualNumbers(t *testing.T) {
	// Duplicate student-ID rows resolve to the same number; their relative
	// order must survive the sort.
	roster := testRoster(t, map[string]int{"S001": 1, "S002": 2})
	table := &Table{
		Headers: []string{"Student ID", "Name"},
		Rows: [][]string{
			{"S002", "Baba"},
			{"S001", "first"},
			{"S001", "second"},
		},
	}

	joined, err := Join(table, roster, testColumns)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "S001", "first"}, joined.Rows[0])
	assert.Equal(t, []string{"1", "S001", "second"}, joined.Rows[1])
	assert.Equal(t, []string{"2", "S002", "Baba"}, joined.Rows[2])
}

func TestJoin_ReplacesExistingNumberColumn(t *testing.T) {
	roster := testRoster(t, map[string]int{"S001": 5})
	table := &Table{
		Headers: []string{"Respondent No.", "Student ID", "Name"},
		Rows:    [][]string{{"999", "S001", "Aoki"}},
	}

	joined, err := Join(table, roster, testColumns)
	require.NoError(t, err)

	assert.Equal(t, []string{"Respondent No.", "Student ID", "Name"}, joined.Headers)
	assert.Equal(t, []string{"5", "S001", "Aoki"}, joined.Rows[0],
		"stale number column must be replaced, not duplicated")
}

func TestJoin_MissingIDColumn(t *testing.T) {
	roster := testRoster(t, map[string]int{"S001": 1})
	table := &Table{Headers: []string{"Name"}, Rows: nil}

	_, err := Join(table, roster, testColumns)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingColumn))
}

func TestJoin_DoesNotModifyInput(t *testing.T) {
	roster := testRoster(t, map[string]int{"S001": 1})
	table := &Table{
		Headers: []string{"Student ID", "Name"},
		Rows:    [][]string{{" S001 ", "Aoki"}},
	}

	_, err := Join(table, roster, testColumns)
	require.NoError(t, err)
	assert.Equal(t, " S001 ", table.Rows[0][0], "input table must be left untouched")
}

func TestJoin_Idempotent(t *testing.T) {
	// Running the join twice over the same inputs produces byte-identical
	// output.
	roster := testRoster(t, map[string]int{"S001": 1, "S002": 2, "S003": 3})

	first, err := Join(surveyTable(), roster, testColumns)
	require.NoError(t, err)
	second, err := Join(surveyTable(), roster, testColumns)
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, first.Encode(&a))
	require.NoError(t, second.Encode(&b))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestJoinThenLookup_RoundTrip(t *testing.T) {
	// For every number in the roster, lookup on the joined output returns
	// the original row's text fields unchanged.
	roster := testRoster(t, map[string]int{"S001": 1, "S002": 2, "S003": 3})
	original := surveyTable()

	joined, err := Join(original, roster, testColumns)
	require.NoError(t, err)

	wantByID := map[string][]string{}
	for _, row := range original.Rows {
		wantByID[strings.TrimSpace(row[0])] = row
	}

	for id, number := range roster.Numbers {
		view, err := Lookup(joined, number, testColumns)
		require.NoError(t, err)

		assert.Equal(t, id, view.ID)
		require.Len(t, view.Answers, 3)

		want := wantByID[id]
		require.NotNil(t, want)
		for i, ans := range view.Answers {
			if !ans.NoResponse {
				assert.Equal(t, want[2+i], ans.Text, "answer %d for %s", i, id)
			}
		}
	}
}
