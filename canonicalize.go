package canonjson

import "io"

// Canonicalize parses one JSON document with the current driver and
// re-serializes it canonically, so equivalent documents (same data, any
// formatting or member order) map to the same bytes. The operation is
// idempotent: canonical text canonicalizes to itself.
func Canonicalize(data []byte, opts ...SerializeOpt) (string, error) {
	v, err := ParseBytes(data)
	if err != nil {
		return "", err
	}
	return Serialize(v, opts...)
}

// CanonicalizeReader is Canonicalize for streamed input.
func CanonicalizeReader(r io.Reader, opts ...SerializeOpt) (string, error) {
	v, err := ParseReader(r)
	if err != nil {
		return "", err
	}
	return Serialize(v, opts...)
}
