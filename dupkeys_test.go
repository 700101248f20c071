package canonjson

import (
	"strings"
	"testing"
)

func TestDetectDuplicateKeys_NoDup(t *testing.T) {
	js := []byte(`{"a":1,"b":2,"nested":{"a":1}}`)
	iss, err := DetectDuplicateKeys(js)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 0 {
		t.Fatalf("expected 0 issues, got %d: %v", len(iss), iss)
	}
}

func TestDetectDuplicateKeys_WithDup(t *testing.T) {
	js := []byte(`{"a":1,"a":2}`)
	iss, err := DetectDuplicateKeys(js)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 1 {
		t.Fatalf("expected 1 issue, got %d: %v", len(iss), iss)
	}
	if iss[0].Code != CodeDuplicateKey {
		t.Fatalf("expected duplicate_key, got %s", iss[0].Code)
	}
	if iss[0].Path != "/a" {
		t.Fatalf("expected path /a, got %s", iss[0].Path)
	}
}

func TestDetectDuplicateKeys_NestedPath(t *testing.T) {
	js := []byte(`[{"x":1},{"x":1,"x":2}]`)
	iss, err := DetectDuplicateKeys(js)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 1 || iss[0].Path != "/1/x" {
		t.Fatalf("expected one issue at /1/x, got %v", iss)
	}
}

// Sibling objects keep separate key sets; a name reused across levels is not
// a duplicate.
func TestDetectDuplicateKeys_ScopedPerObject(t *testing.T) {
	js := []byte(`{"o":{"k":1,"k":2},"k":3}`)
	iss, err := DetectDuplicateKeys(js)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 1 || iss[0].Path != "/o/k" {
		t.Fatalf("expected one issue at /o/k, got %v", iss)
	}
}

func TestDetectDuplicateKeys_ValueEqualToKey(t *testing.T) {
	js := []byte(`{"a":"a","b":["b","b"]}`)
	iss, err := DetectDuplicateKeys(js)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 0 {
		t.Fatalf("string values misread as keys: %v", iss)
	}
}

func TestDetectDuplicateKeys_PointerTokensEscaped(t *testing.T) {
	js := []byte(`{"a/b":1,"a/b":2}`)
	iss, err := DetectDuplicateKeys(js)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 1 || iss[0].Path != "/a~1b" {
		t.Fatalf("expected one issue at /a~1b, got %v", iss)
	}
}

func TestDetectDuplicateKeys_EveryRepeatReported(t *testing.T) {
	js := []byte(`{"a":1,"a":2,"a":3,"b":{"c":0,"c":1}}`)
	iss, err := DetectDuplicateKeys(js)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := []string{"/a", "/a", "/b/c"}
	if len(iss) != len(want) {
		t.Fatalf("expected %d issues, got %d: %v", len(want), len(iss), iss)
	}
	for i, p := range want {
		if iss[i].Path != p {
			t.Fatalf("issue %d path = %s, want %s", i, iss[i].Path, p)
		}
	}
}

func TestDetectDuplicateKeys_Malformed(t *testing.T) {
	_, err := DetectDuplicateKeys([]byte(`{"a":1,`))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	iss, ok := AsIssue(err)
	if !ok || iss.Code != CodeParseError {
		t.Fatalf("expected parse_error issue, got %v", err)
	}
}

func TestDetectDuplicateKeysReader(t *testing.T) {
	iss, err := DetectDuplicateKeysReader(strings.NewReader(`{"k":true,"k":false}`))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 1 || iss[0].Path != "/k" {
		t.Fatalf("expected one issue at /k, got %v", iss)
	}
}
