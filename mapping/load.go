package mapping

import (
	"os"

	"gopkg.in/yaml.v3"

	"surveyid/errors"
)

// Load reads a raw roster document from disk. The result is the unvalidated
// key to attribute-bag structure that Validate consumes; nothing about the
// entries is checked here beyond the document being well-formed YAML.
func Load(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read roster %s", path)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapParse(err, "failed to parse roster "+path)
	}

	if len(raw) == 0 {
		return nil, errors.Wrapf(errors.ErrInvalidRoster, "roster %s is empty", path)
	}

	return raw, nil
}
