//go:build sonic

package sonicjson

import (
	"io"

	"github.com/bytedance/sonic"

	canonjson "github.com/reoring/canonjson"
)

// api is frozen once at init. UseNumber keeps number literals verbatim so
// the double-range check happens in one place, during value adaptation.
var api = sonic.Config{UseNumber: true}.Froze()

// Driver returns a canonjson.Driver backed by bytedance/sonic.
// Note: Requires building with -tags sonic; amd64 and arm64 take the JIT path.
func Driver() canonjson.Driver { return driverSonic{} }

type driverSonic struct{}

func (driverSonic) Parse(data []byte) (canonjson.Value, error) {
	var v any
	if err := api.Unmarshal(data, &v); err != nil {
		return nil, &canonjson.Issue{Path: "/", Code: canonjson.CodeParseError, Message: err.Error(), Cause: err}
	}
	return canonjson.FromAny(v)
}

func (d driverSonic) ParseReader(r io.Reader) (canonjson.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &canonjson.Issue{Path: "/", Code: canonjson.CodeParseError, Message: err.Error(), Cause: err}
	}
	return d.Parse(data)
}

func (driverSonic) Name() string { return "sonic" }
