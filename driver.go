package canonjson

import (
	"bytes"
	"io"
	"sync"

	gojson "github.com/goccy/go-json"
)

// Driver supplies parsed value trees to the canonicalizer. Implementations
// wrap a JSON parser; the default is backed by goccy/go-json and alternates
// live under source/.
type Driver interface {
	// Parse decodes exactly one JSON document from data.
	Parse(data []byte) (Value, error)
	// ParseReader decodes exactly one JSON document from r.
	ParseReader(r io.Reader) (Value, error)
	// Name identifies the backing parser for diagnostics.
	Name() string
}

var (
	driverMu      sync.RWMutex
	currentDriver Driver = defaultDriver{}
)

// SetDriver replaces the process-wide parser driver. A nil driver is ignored.
func SetDriver(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultDriver restores the built-in goccy/go-json driver.
func UseDefaultDriver() {
	driverMu.Lock()
	currentDriver = defaultDriver{}
	driverMu.Unlock()
}

func getDriver() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}

// ParseBytes parses one JSON document into a Value using the current driver.
func ParseBytes(data []byte) (Value, error) { return getDriver().Parse(data) }

// ParseReader parses one JSON document from r using the current driver.
func ParseReader(r io.Reader) (Value, error) { return getDriver().ParseReader(r) }

// defaultDriver is the goccy/go-json backed implementation.
type defaultDriver struct{}

func (defaultDriver) Parse(data []byte) (Value, error) {
	return decodeValue(gojson.NewDecoder(bytes.NewReader(data)))
}

func (defaultDriver) ParseReader(r io.Reader) (Value, error) {
	return decodeValue(gojson.NewDecoder(r))
}

func (defaultDriver) Name() string { return "go-json" }

// decodeValue drains one document from dec and adapts it. UseNumber keeps
// number literals verbatim so the range check happens in one place, during
// adaptation; trailing non-whitespace is rejected.
func decodeValue(dec *gojson.Decoder) (Value, error) {
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}
	}
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, &Issue{Path: "/", Code: CodeParseError, Message: "unexpected trailing data"}
	}
	return FromAny(v)
}
