package canonjson

import (
	"bytes"
	"io"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/canonjson/i18n"
	"github.com/reoring/canonjson/internal/jsonptr"
)

// DetectDuplicateKeys scans one JSON document and reports every object
// member name that repeats within its object, each as a duplicate_key Issue
// pathed by JSON Pointer. An empty result means the document is clean.
//
// Canonicalization itself keeps the parser's last-member-wins behavior, so
// callers whose output feeds hashes or signatures usually want to run this
// first and refuse documents whose meaning depends on that rule. The error
// return is reserved for input that is not valid JSON.
func DetectDuplicateKeys(data []byte) ([]Issue, error) {
	return scanDuplicateKeys(gojson.NewDecoder(bytes.NewReader(data)))
}

// DetectDuplicateKeysReader is DetectDuplicateKeys over a stream.
func DetectDuplicateKeysReader(r io.Reader) ([]Issue, error) {
	return scanDuplicateKeys(gojson.NewDecoder(r))
}

// dupFrame tracks one open container during the token walk.
type dupFrame struct {
	isObject     bool
	keys         map[string]struct{}
	expectingKey bool
	pendingKey   string
	index        int
	path         string
}

func scanDuplicateKeys(dec *gojson.Decoder) ([]Issue, error) {
	dec.UseNumber()

	var issues []Issue
	var stack []dupFrame

	// valuePath is the pointer to the value slot about to be filled.
	valuePath := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := &stack[len(stack)-1]
		if top.isObject {
			return jsonptr.Join(top.path, top.pendingKey)
		}
		return jsonptr.Join(top.path, strconv.Itoa(top.index))
	}
	// advance marks the open value slot consumed.
	advance := func() {
		if len(stack) == 0 {
			return
		}
		top := &stack[len(stack)-1]
		if top.isObject {
			top.expectingKey = true
			top.pendingKey = ""
		} else {
			top.index++
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return issues, nil
		}
		if err != nil {
			return nil, &Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}
		}
		switch t := tok.(type) {
		case gojson.Delim:
			switch t {
			case '{':
				p := valuePath()
				advance()
				stack = append(stack, dupFrame{isObject: true, keys: make(map[string]struct{}), expectingKey: true, path: p})
			case '[':
				p := valuePath()
				advance()
				stack = append(stack, dupFrame{path: p})
			case '}', ']':
				stack = stack[:len(stack)-1]
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].isObject && stack[n-1].expectingKey {
				top := &stack[n-1]
				if _, dup := top.keys[t]; dup {
					issues = append(issues, Issue{
						Path:    jsonptr.Join(top.path, t),
						Code:    CodeDuplicateKey,
						Message: i18n.T(CodeDuplicateKey, map[string]string{"key": t}),
					})
				}
				top.keys[t] = struct{}{}
				top.expectingKey = false
				top.pendingKey = t
			} else {
				advance()
			}
		default:
			// Numbers, booleans, null.
			advance()
		}
	}
}
