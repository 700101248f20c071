// Package stdjson provides an encoding/json-backed parser driver. It is the
// portable baseline: slower than the go-json default but free of assembly
// and build tags.
package stdjson

import (
	"bytes"
	"encoding/json"
	"io"

	canonjson "github.com/reoring/canonjson"
)

// Driver returns a canonjson.Driver backed by encoding/json.
func Driver() canonjson.Driver { return driverStd{} }

type driverStd struct{}

func (driverStd) Parse(data []byte) (canonjson.Value, error) {
	return decodeValue(json.NewDecoder(bytes.NewReader(data)))
}

func (driverStd) ParseReader(r io.Reader) (canonjson.Value, error) {
	return decodeValue(json.NewDecoder(r))
}

func (driverStd) Name() string { return "encoding/json" }

func decodeValue(dec *json.Decoder) (canonjson.Value, error) {
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &canonjson.Issue{Path: "/", Code: canonjson.CodeParseError, Message: err.Error(), Cause: err}
	}
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, &canonjson.Issue{Path: "/", Code: canonjson.CodeParseError, Message: "unexpected trailing data"}
	}
	return canonjson.FromAny(v)
}
