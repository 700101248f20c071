package canonjson_test

import (
	"reflect"
	"strings"
	"testing"

	canonjson "github.com/reoring/canonjson"
)

func TestCanonicalize_Vectors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty_object", `{}`, `{}`},
		{"empty_array", `[]`, `[]`},
		{"scalar_string", `"hi"`, `"hi"`},
		{"scalar_number", `1.50`, `1.5`},
		{"keys_reordered", `{"b":2,"a":1}`, `{"a":1,"b":2}`},
		{"whitespace_stripped", "{\n  \"a\" : [ 1 , 2 ] ,\n  \"b\" : true\n}", `{"a":[1,2],"b":true}`},
		{"non_ascii_escaped", `{"name":"é"}`, `{"name":"\u00e9"}`},
		{"escape_normalized", `{"s":"/A"}`, `{"s":"/A"}`},
		{"number_normalized", `[1.0,1e2,1E+2,10000000000000000000000]`, `[1,100,100,1e+22]`},
		{"negative_zero_collapses", `[-0.0]`, `[0]`},
		{"nested", `{"z":{"b":[2,1],"a":null},"a":"x"}`, `{"a":"x","z":{"a":null,"b":[2,1]}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := canonjson.Canonicalize([]byte(tc.in))
			if err != nil {
				t.Fatalf("Canonicalize(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("Canonicalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// Documents that differ only in formatting, key order, escape spelling, or
// number spelling must canonicalize to the same byte sequence.
func TestCanonicalize_FormattingInsensitive(t *testing.T) {
	groups := [][]string{
		{
			`{"a":1,"b":2}`,
			`{"b":2,"a":1}`,
			"{ \"a\" : 1 ,\n  \"b\" : 2 }",
			`{"b":2.0,"a":1.0}`,
		},
		{
			`{"s":"/"}`,
			`{"s":"\/"}`,
			`{"s":"/"}`,
		},
		{
			`[1e2,100]`,
			`[100.0,1E2]`,
		},
	}
	for _, group := range groups {
		first, err := canonjson.Canonicalize([]byte(group[0]))
		if err != nil {
			t.Fatalf("Canonicalize(%q) error: %v", group[0], err)
		}
		for _, in := range group[1:] {
			got, err := canonjson.Canonicalize([]byte(in))
			if err != nil {
				t.Fatalf("Canonicalize(%q) error: %v", in, err)
			}
			if got != first {
				t.Fatalf("Canonicalize(%q) = %q, want %q (same as %q)", in, got, first, group[0])
			}
		}
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	corpus := []string{
		`{"b":[1,2.5,"x"],"a":null}`,
		`{"nested":{"z":true,"a":{"k":[{}]}}}`,
		`["é","𝄞","plain"]`,
		`[1e21,1e-7,0.000001,-0.0,9007199254740992]`,
		`{"":0,"~":1,"/":2}`,
	}
	for _, in := range corpus {
		once, err := canonjson.Canonicalize([]byte(in))
		if err != nil {
			t.Fatalf("Canonicalize(%q) error: %v", in, err)
		}
		twice, err := canonjson.Canonicalize([]byte(once))
		if err != nil {
			t.Fatalf("Canonicalize(%q) error: %v", once, err)
		}
		if once != twice {
			t.Fatalf("not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

// Canonical output parses back into the same value tree. Shortest-round-trip
// number formatting makes this hold for every finite double.
func TestCanonicalize_RoundTripStructure(t *testing.T) {
	docs := []string{
		`{"temp":-1.5,"samples":[1e21,1e-7,0.5],"ok":true,"city":"Zürich"}`,
		`[[],{},[null,false]]`,
	}
	for _, in := range docs {
		before, err := canonjson.ParseBytes([]byte(in))
		if err != nil {
			t.Fatalf("ParseBytes(%q) error: %v", in, err)
		}
		out, err := canonjson.Canonicalize([]byte(in))
		if err != nil {
			t.Fatalf("Canonicalize(%q) error: %v", in, err)
		}
		after, err := canonjson.ParseBytes([]byte(out))
		if err != nil {
			t.Fatalf("ParseBytes(%q) error: %v", out, err)
		}
		if !reflect.DeepEqual(before, after) {
			t.Fatalf("round trip changed value: %#v vs %#v", before, after)
		}
	}
}

func TestCanonicalize_ParseError(t *testing.T) {
	for _, in := range []string{``, `{`, `{"a":}`, `[1,]`, `nul`} {
		_, err := canonjson.Canonicalize([]byte(in))
		if err == nil {
			t.Fatalf("Canonicalize(%q) succeeded, want parse error", in)
		}
		iss, ok := canonjson.AsIssue(err)
		if !ok {
			t.Fatalf("Canonicalize(%q) error is %T, want *Issue", in, err)
		}
		if iss.Code != canonjson.CodeParseError {
			t.Fatalf("Canonicalize(%q) code = %q, want %q", in, iss.Code, canonjson.CodeParseError)
		}
	}
}

func TestCanonicalize_MaxDepthOption(t *testing.T) {
	doc := strings.Repeat("[", 30) + strings.Repeat("]", 30)
	if _, err := canonjson.Canonicalize([]byte(doc), canonjson.SerializeOpt{MaxDepth: 30}); err != nil {
		t.Fatalf("depth 30 with MaxDepth 30 failed: %v", err)
	}
	_, err := canonjson.Canonicalize([]byte(doc), canonjson.SerializeOpt{MaxDepth: 8})
	iss, ok := canonjson.AsIssue(err)
	if !ok || iss.Code != canonjson.CodeDepthExceeded {
		t.Fatalf("depth 30 with MaxDepth 8: err = %v, want %s", err, canonjson.CodeDepthExceeded)
	}
}

func TestCanonicalizeReader(t *testing.T) {
	out, err := canonjson.CanonicalizeReader(strings.NewReader(`{"b":2,"a":1}`))
	if err != nil {
		t.Fatalf("CanonicalizeReader error: %v", err)
	}
	if want := `{"a":1,"b":2}`; out != want {
		t.Fatalf("CanonicalizeReader = %q, want %q", out, want)
	}

	if _, err := canonjson.CanonicalizeReader(strings.NewReader(`{"a":`)); err == nil {
		t.Fatalf("CanonicalizeReader on truncated input succeeded")
	}
}

func FuzzCanonicalize(f *testing.F) {
	f.Add([]byte(`{"a":[1,2.5,"x"],"b":null}`))
	f.Add([]byte(`"𝄞"`))
	f.Add([]byte(`[1e21,1e-7,-0.0]`))
	f.Add([]byte(`{"é":"\u0000","":[]}`))
	f.Add([]byte(`0.000001`))
	f.Fuzz(func(t *testing.T, data []byte) {
		out, err := canonjson.Canonicalize(data)
		if err != nil {
			t.Skip()
		}
		for i := 0; i < len(out); i++ {
			if out[i] < 0x20 || out[i] > 0x7e {
				t.Fatalf("non-ASCII byte %#x in canonical output %q", out[i], out)
			}
		}
		again, err := canonjson.Canonicalize([]byte(out))
		if err != nil {
			t.Fatalf("canonical output %q no longer parses: %v", out, err)
		}
		if again != out {
			t.Fatalf("not idempotent: %q -> %q", out, again)
		}
	})
}
