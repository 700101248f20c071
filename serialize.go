package canonjson

import (
	"fmt"
	"strconv"

	"github.com/reoring/canonjson/internal/jsonptr"
)

// DefaultMaxDepth bounds container nesting when SerializeOpt.MaxDepth is
// zero. The walk recurses once per level, so the bound is what keeps a
// pathological tree from exhausting the goroutine stack.
const DefaultMaxDepth = 10000

// SerializeOpt bundles per-call serialization options. Pass at most one;
// when several are given the last wins.
type SerializeOpt struct {
	// MaxDepth overrides the container nesting bound. Values <= 0 select
	// DefaultMaxDepth.
	MaxDepth int
}

// Serialize renders v as canonical JSON text: object members ordered by
// UTF-16 key comparison, ASCII-only strings, shortest round-trip numbers,
// and no whitespace. Structurally equal trees yield byte-identical output,
// which is what makes the result safe to hash, sign, or compare.
//
// On error the returned string is empty; partial output never escapes.
func Serialize(v Value, opts ...SerializeOpt) (string, error) {
	out, err := Append(nil, v, opts...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Append renders v as canonical JSON appended to dst, growing it as needed.
// On error the original dst is returned unextended.
func Append(dst []byte, v Value, opts ...SerializeOpt) ([]byte, error) {
	var opt SerializeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	maxDepth := opt.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	e := &emitter{buf: dst, maxDepth: maxDepth}
	if err := e.value(v); err != nil {
		return dst, err
	}
	return e.buf, nil
}

// emitter drives the recursive walk. segs tracks the member/index path to
// the node in flight; a failure renders it as a JSON Pointer, while the
// success path never pays for pointer strings.
type emitter struct {
	buf      []byte
	segs     []string
	maxDepth int
}

func (e *emitter) value(v Value) error {
	switch x := v.(type) {
	case nil, Null:
		e.buf = append(e.buf, "null"...)
	case Bool:
		if x {
			e.buf = append(e.buf, "true"...)
		} else {
			e.buf = append(e.buf, "false"...)
		}
	case Number:
		buf, err := appendNumber(e.buf, float64(x))
		if err != nil {
			return e.fail(err)
		}
		e.buf = buf
	case String:
		buf, err := appendQuoted(e.buf, string(x))
		if err != nil {
			return e.fail(err)
		}
		e.buf = buf
	case Array:
		if err := e.checkDepth(); err != nil {
			return err
		}
		e.buf = append(e.buf, '[')
		for i, elem := range x {
			if i > 0 {
				e.buf = append(e.buf, ',')
			}
			e.segs = append(e.segs, strconv.Itoa(i))
			if err := e.value(elem); err != nil {
				return err
			}
			e.segs = e.segs[:len(e.segs)-1]
		}
		e.buf = append(e.buf, ']')
	case Object:
		if err := e.checkDepth(); err != nil {
			return err
		}
		e.buf = append(e.buf, '{')
		for i, m := range sortedMembers(x) {
			if i > 0 {
				e.buf = append(e.buf, ',')
			}
			e.segs = append(e.segs, m.key)
			buf, err := appendQuoted(e.buf, m.key)
			if err != nil {
				return e.fail(err)
			}
			e.buf = append(buf, ':')
			if err := e.value(m.val); err != nil {
				return err
			}
			e.segs = e.segs[:len(e.segs)-1]
		}
		e.buf = append(e.buf, '}')
	default:
		return e.fail(newIssue(CodeInvalidValue, map[string]string{"type": fmt.Sprintf("%T", v)}))
	}
	return nil
}

// checkDepth runs on entry to a container; len(segs) counts the ancestors,
// so containers are admitted while fewer than maxDepth levels are open.
func (e *emitter) checkDepth() error {
	if len(e.segs) >= e.maxDepth {
		return e.fail(newIssue(CodeDepthExceeded, map[string]string{"max": strconv.Itoa(e.maxDepth)}))
	}
	return nil
}

func (e *emitter) fail(err error) error {
	if iss, ok := AsIssue(err); ok && iss.Path == "" {
		iss.Path = jsonptr.FromSegments(e.segs)
	}
	return err
}
