package mapping

import (
	"fmt"
	"sort"
	"strings"

	"surveyid/errors"
)

// Defect records why a single roster entry was rejected.
type Defect struct {
	// Key is the trimmed student ID of the rejected entry
	Key string

	// Reason is the specific check the entry failed
	Reason string
}

// ValidationError reports every malformed roster entry found in one pass.
// Hand-maintained rosters accumulate several mistakes at once; listing them
// all lets the editor fix the whole file in a single round.
type ValidationError struct {
	Defects []Defect
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "roster has %d invalid entries:", len(e.Defects))
	for _, d := range e.Defects {
		fmt.Fprintf(&b, "\n  %s: %s", d.Key, d.Reason)
	}
	return b.String()
}

// Is makes the error match the ErrInvalidRoster sentinel.
func (e *ValidationError) Is(target error) bool {
	return target == errors.ErrInvalidRoster
}

// DuplicateNumberError reports respondent numbers assigned to more than one
// student ID, each with every key sharing it.
type DuplicateNumberError struct {
	// Collisions maps a colliding respondent number to the sorted student
	// IDs sharing it.
	Collisions map[int][]string
}

// Numbers returns the colliding respondent numbers in ascending order.
func (e *DuplicateNumberError) Numbers() []int {
	ns := make([]int, 0, len(e.Collisions))
	for n := range e.Collisions {
		ns = append(ns, n)
	}
	sort.Ints(ns)
	return ns
}

func (e *DuplicateNumberError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "roster assigns %d respondent numbers more than once:", len(e.Collisions))
	for _, n := range e.Numbers() {
		fmt.Fprintf(&b, "\n  number %d: %s", n, strings.Join(e.Collisions[n], ", "))
	}
	return b.String()
}

// Is makes the error match the ErrInvalidRoster sentinel.
func (e *DuplicateNumberError) Is(target error) bool {
	return target == errors.ErrInvalidRoster
}
