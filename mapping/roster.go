// Package mapping validates the hand-edited roster binding each student ID
// to a respondent number, and generates draft rosters from survey tables.
//
// Validation batches every defect it finds instead of stopping at the first:
// a roster with five bad entries reports all five. Duplicate and coverage
// checks only run once every entry is individually well-formed, since
// duplicate analysis on malformed data is meaningless.
package mapping

import (
	"fmt"
	"sort"
	"strings"

	"surveyid/errors"
)

// Roster is a validated student ID to respondent number mapping.
type Roster struct {
	// Numbers maps trimmed student ID to respondent number.
	Numbers map[string]int

	// MaxNumber is the bound N the roster was validated against.
	MaxNumber int
}

// Lookup returns the respondent number for a student ID. The ID is trimmed
// before comparison, matching the trimming applied to roster keys.
func (r *Roster) Lookup(studentID string) (int, bool) {
	n, ok := r.Numbers[strings.TrimSpace(studentID)]
	return n, ok
}

// Used returns the assigned respondent numbers in ascending order.
func (r *Roster) Used() []int {
	used := make([]int, 0, len(r.Numbers))
	for _, n := range r.Numbers {
		used = append(used, n)
	}
	sort.Ints(used)
	return used
}

// Validate parses a raw roster document into a verified Roster.
//
// Per-entry checks (batched; every failing entry is reported):
//   - the entry value must be a mapping
//   - `number` must be present and non-null
//   - `number` must be an integer
//   - `number` must be within [1, maxNumber]
//
// Only when every entry passes are respondent numbers checked for
// uniqueness, and only when unique is coverage computed. Coverage gaps are
// advisory: the missing numbers are returned alongside a valid roster.
func Validate(raw map[string]interface{}, maxNumber int) (*Roster, []int, error) {
	if maxNumber < 1 {
		return nil, nil, errors.Newf("respondent number bound must be >= 1, got %d", maxNumber)
	}
	if len(raw) == 0 {
		return nil, nil, errors.Wrap(errors.ErrInvalidRoster, "roster is empty")
	}

	// Deterministic report order regardless of map iteration
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	numbers := make(map[string]int, len(raw))
	var defects []Defect

	for _, key := range keys {
		id := strings.TrimSpace(key)

		attrs, ok := raw[key].(map[string]interface{})
		if !ok {
			defects = append(defects, Defect{Key: id, Reason: "entry is not a mapping"})
			continue
		}

		value, present := attrs["number"]
		if !present || value == nil {
			defects = append(defects, Defect{Key: id, Reason: "number is not set"})
			continue
		}

		n, ok := value.(int)
		if !ok {
			defects = append(defects, Defect{Key: id, Reason: fmt.Sprintf("number must be an integer (got %T)", value)})
			continue
		}

		if n < 1 || n > maxNumber {
			defects = append(defects, Defect{Key: id, Reason: fmt.Sprintf("number must be within 1..%d (got %d)", maxNumber, n)})
			continue
		}

		numbers[id] = n
	}

	if len(defects) > 0 {
		return nil, nil, &ValidationError{Defects: defects}
	}

	// Uniqueness, only on entry-clean data
	byNumber := make(map[int][]string)
	for id, n := range numbers {
		byNumber[n] = append(byNumber[n], id)
	}
	collisions := make(map[int][]string)
	for n, ids := range byNumber {
		if len(ids) > 1 {
			sort.Strings(ids)
			collisions[n] = ids
		}
	}
	if len(collisions) > 0 {
		return nil, nil, &DuplicateNumberError{Collisions: collisions}
	}

	// Coverage, only on unique data. Gaps warn, never reject.
	var missing []int
	for n := 1; n <= maxNumber; n++ {
		if _, used := byNumber[n]; !used {
			missing = append(missing, n)
		}
	}

	return &Roster{Numbers: numbers, MaxNumber: maxNumber}, missing, nil
}
