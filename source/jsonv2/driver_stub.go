//go:build !jsonv2

package jsonv2

import (
	"io"

	canonjson "github.com/reoring/canonjson"
	"github.com/reoring/canonjson/source/stdjson"
)

// Driver returns a fallback driver when the jsonv2 build tag is not enabled.
// It delegates to the encoding/json-based driver.
func Driver() canonjson.Driver { return driverStub{} }

type driverStub struct{}

func (driverStub) Parse(data []byte) (canonjson.Value, error) {
	return stdjson.Driver().Parse(data)
}

func (driverStub) ParseReader(r io.Reader) (canonjson.Value, error) {
	return stdjson.Driver().ParseReader(r)
}

func (driverStub) Name() string { return "encoding/json (jsonv2 stub)" }
