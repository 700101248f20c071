// Package yamlval parses YAML documents into canonjson values, so YAML
// configuration can be fingerprinted with the same canonical bytes as the
// equivalent JSON.
package yamlval

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	canonjson "github.com/reoring/canonjson"
)

// Parse decodes a single YAML document. Mapping keys must be strings, and
// scalars outside the JSON data model (binary, timestamps) are rejected with
// invalid_value; output feeds hashes, so nothing is coerced silently.
func Parse(data []byte) (canonjson.Value, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, &canonjson.Issue{Path: "/", Code: canonjson.CodeParseError, Message: err.Error(), Cause: err}
	}
	return canonjson.FromAny(v)
}

// ParseAll decodes every document in a multi-document stream, in order.
func ParseAll(data []byte) ([]canonjson.Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []canonjson.Value
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, &canonjson.Issue{Path: "/", Code: canonjson.CodeParseError, Message: err.Error(), Cause: err}
		}
		cv, err := canonjson.FromAny(v)
		if err != nil {
			return nil, err
		}
		out = append(out, cv)
	}
}
