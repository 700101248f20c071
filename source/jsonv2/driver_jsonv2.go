//go:build jsonv2

package jsonv2

import (
	v2json "encoding/json/v2"
	"io"

	canonjson "github.com/reoring/canonjson"
)

// Driver returns a canonjson.Driver backed by encoding/json/v2.
// Note: Requires building with -tags jsonv2 and GOEXPERIMENT=jsonv2.
func Driver() canonjson.Driver { return driverV2{} }

type driverV2 struct{}

func (driverV2) Parse(data []byte) (canonjson.Value, error) {
	var v any
	if err := v2json.Unmarshal(data, &v); err != nil {
		return nil, &canonjson.Issue{Path: "/", Code: canonjson.CodeParseError, Message: err.Error(), Cause: err}
	}
	return canonjson.FromAny(v)
}

func (d driverV2) ParseReader(r io.Reader) (canonjson.Value, error) {
	// Read all then decode; experimental path prioritizes simplicity.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &canonjson.Issue{Path: "/", Code: canonjson.CodeParseError, Message: err.Error(), Cause: err}
	}
	return d.Parse(data)
}

func (driverV2) Name() string { return "encoding/json/v2" }
