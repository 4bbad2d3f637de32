package survey

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"surveyid/errors"
)

// Answer is one free-text response cell. An absent or whitespace-only cell
// is represented as NoResponse rather than an empty answer, so callers can
// tell "left blank" apart from a short real answer.
type Answer struct {
	Column     string `json:"column"`
	Text       string `json:"text"`
	NoResponse bool   `json:"no_response"`
}

// View is the lookup result for one respondent.
type View struct {
	Number  int      `json:"number"`
	ID      string   `json:"student_id"`
	Name    string   `json:"name"`
	Answers []Answer `json:"answers"`
}

// NotFoundError reports a lookup miss together with every respondent number
// that is present in the table, so the caller can retry with a valid one.
type NotFoundError struct {
	Number int
	Valid  []int
}

func (e *NotFoundError) Error() string {
	valid := make([]string, len(e.Valid))
	for i, n := range e.Valid {
		valid[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf("respondent %d not found in table (present: %s)",
		e.Number, strings.Join(valid, ", "))
}

// Is makes the error match the ErrNotFound sentinel.
func (e *NotFoundError) Is(target error) bool {
	return target == errors.ErrNotFound
}

// Lookup filters the joined table by exact respondent number and extracts
// the designated answer fields.
//
// With zero matches it fails with a NotFoundError carrying the ascending
// set of numbers present. With several matches (tolerated silently, since
// uniqueness was enforced upstream) the first row in table order wins.
func Lookup(t *Table, number int, cols Columns) (*View, error) {
	numberIdx, err := t.Column(cols.Number)
	if err != nil {
		return nil, err
	}
	idIdx, err := t.Column(cols.ID)
	if err != nil {
		return nil, err
	}
	nameIdx, err := t.Column(cols.Name)
	if err != nil {
		return nil, err
	}
	answerIdx := make([]int, len(cols.Answers))
	for i, col := range cols.Answers {
		if answerIdx[i], err = t.Column(col); err != nil {
			return nil, err
		}
	}

	var match []string
	present := make(map[int]bool)
	for _, row := range t.Rows {
		n, convErr := strconv.Atoi(strings.TrimSpace(row[numberIdx]))
		if convErr != nil {
			continue
		}
		present[n] = true
		if n == number && match == nil {
			match = row
		}
	}

	if match == nil {
		valid := make([]int, 0, len(present))
		for n := range present {
			valid = append(valid, n)
		}
		sort.Ints(valid)
		return nil, &NotFoundError{Number: number, Valid: valid}
	}

	view := &View{
		Number:  number,
		ID:      match[idIdx],
		Name:    match[nameIdx],
		Answers: make([]Answer, len(answerIdx)),
	}
	for i, idx := range answerIdx {
		text := match[idx]
		if strings.TrimSpace(text) == "" {
			view.Answers[i] = Answer{Column: cols.Answers[i], NoResponse: true}
			continue
		}
		view.Answers[i] = Answer{Column: cols.Answers[i], Text: text}
	}

	return view, nil
}
