package jsonptr

import "testing"

func TestEscape(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{"", ""},
		{"~", "~0"},
		{"/", "~1"},
		{"a/b", "a~1b"},
		{"m~n", "m~0n"},
		{"~1", "~01"},
		{"a~/b", "a~0~1b"},
	}
	for _, tc := range cases {
		if got := Escape(tc.in); got != tc.want {
			t.Fatalf("Escape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestJoin(t *testing.T) {
	cases := []struct{ base, token, want string }{
		{"", "a", "/a"},
		{"/a", "b", "/a/b"},
		{"/a", "0", "/a/0"},
		{"", "a/b", "/a~1b"},
		{"/outer", "", "/outer/"},
	}
	for _, tc := range cases {
		if got := Join(tc.base, tc.token); got != tc.want {
			t.Fatalf("Join(%q, %q) = %q, want %q", tc.base, tc.token, got, tc.want)
		}
	}
}

func TestFromSegments(t *testing.T) {
	cases := []struct {
		segs []string
		want string
	}{
		{nil, "/"},
		{[]string{}, "/"},
		{[]string{"a"}, "/a"},
		{[]string{"a", "2", "price"}, "/a/2/price"},
		{[]string{"a/b", "~"}, "/a~1b/~0"},
		{[]string{""}, "/"},
	}
	for _, tc := range cases {
		if got := FromSegments(tc.segs); got != tc.want {
			t.Fatalf("FromSegments(%v) = %q, want %q", tc.segs, got, tc.want)
		}
	}
}
