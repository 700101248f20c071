// Package digest hashes documents over their canonical JSON form, so equal
// data produces equal digests regardless of formatting or member order.
package digest

import (
	"crypto/sha256"
	"encoding/hex"

	canonjson "github.com/reoring/canonjson"
)

// Sum256 canonicalizes one JSON document and returns the SHA-256 of the
// canonical bytes.
func Sum256(data []byte) ([32]byte, error) {
	s, err := canonjson.Canonicalize(data)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256([]byte(s)), nil
}

// Sum256Value hashes an already-built value tree.
func Sum256Value(v canonjson.Value, opts ...canonjson.SerializeOpt) ([32]byte, error) {
	out, err := canonjson.Append(nil, v, opts...)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(out), nil
}

// Hex256 is Sum256 rendered as lowercase hex.
func Hex256(data []byte) (string, error) {
	sum, err := Sum256(data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum[:]), nil
}
