package mapping

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"surveyid/errors"
)

// Seed is one (student ID, name) pair extracted from the survey table.
type Seed struct {
	ID   string
	Name string
}

// GenerateTemplate derives a draft roster document from survey seeds.
//
// Seeds are deduplicated by trimmed student ID (first occurrence wins),
// sorted ascending by that ID, and assigned sequential respondent numbers
// starting at 1 in sorted order. The name rides along as reference metadata.
// The draft is a convenience seed only: it performs no range or uniqueness
// validation of its own; Validate is the authority on the edited result.
func GenerateTemplate(seeds []Seed, maxNumber int) ([]byte, error) {
	if maxNumber < 1 {
		return nil, errors.Newf("respondent number bound must be >= 1, got %d", maxNumber)
	}

	seen := make(map[string]bool, len(seeds))
	ordered := make([]Seed, 0, len(seeds))
	for _, s := range seeds {
		id := strings.TrimSpace(s.ID)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ordered = append(ordered, Seed{ID: id, Name: strings.TrimSpace(s.Name)})
	}

	if len(ordered) == 0 {
		return nil, errors.New("survey table has no student IDs to seed a roster from")
	}

	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	// yaml.v3 node tree keeps entries in assignment order; plain map
	// marshalling would re-sort keys and drop the int tags.
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for i, s := range ordered {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: s.ID}
		number := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(i + 1)}
		entry := &yaml.Node{
			Kind: yaml.MappingNode,
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Value: "number"},
				number,
			},
		}
		if s.Name != "" {
			entry.Content = append(entry.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: "name"},
				&yaml.Node{Kind: yaml.ScalarNode, Value: s.Name},
			)
		}
		doc.Content = append(doc.Content, key, entry)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Respondent number roster\n")
	fmt.Fprintf(&buf, "# Assign each student ID a unique number in 1..%d\n", maxNumber)
	fmt.Fprintf(&buf, "# number: unique integer within the configured range\n")
	fmt.Fprintf(&buf, "# name: reference only, no need to edit\n\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "failed to encode roster template")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize roster template")
	}

	return buf.Bytes(), nil
}
