package canonjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/reoring/canonjson/internal/jsonptr"
)

// FromAny converts a parser-shaped tree (the map[string]any / []any form
// encoding/json and its drop-in replacements produce) into a Value. It
// accepts nil, bool, string, json.Number, the fixed-size Go number types,
// []any, map[string]any, map[any]any with string keys (yaml.v3's fallback
// shape), and Value itself, which passes through as-is.
//
// Numbers land in the double domain by round-to-nearest, the conversion
// JavaScript applies to every numeric literal. A json.Number whose value
// falls outside that domain fails with number_out_of_range; an underflowing
// literal simply rounds (possibly to zero). Any other dynamic type fails
// with invalid_value naming the offending path.
func FromAny(v any) (Value, error) {
	a := &adapter{}
	return a.value(v)
}

type adapter struct {
	segs []string
}

func (a *adapter) value(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		return a.number(string(x))
	case float64:
		return Number(x), nil
	case float32:
		return Number(x), nil
	case int:
		return Number(x), nil
	case int8:
		return Number(x), nil
	case int16:
		return Number(x), nil
	case int32:
		return Number(x), nil
	case int64:
		return Number(x), nil
	case uint:
		return Number(x), nil
	case uint8:
		return Number(x), nil
	case uint16:
		return Number(x), nil
	case uint32:
		return Number(x), nil
	case uint64:
		return Number(x), nil
	case []any:
		arr := make(Array, len(x))
		for i, elem := range x {
			a.segs = append(a.segs, strconv.Itoa(i))
			cv, err := a.value(elem)
			if err != nil {
				return nil, err
			}
			a.segs = a.segs[:len(a.segs)-1]
			arr[i] = cv
		}
		return arr, nil
	case map[string]any:
		obj := make(Object, len(x))
		for k, elem := range x {
			a.segs = append(a.segs, k)
			cv, err := a.value(elem)
			if err != nil {
				return nil, err
			}
			a.segs = a.segs[:len(a.segs)-1]
			obj[k] = cv
		}
		return obj, nil
	case map[any]any:
		obj := make(Object, len(x))
		for k, elem := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, a.fail(newIssue(CodeInvalidValue, map[string]string{"type": fmt.Sprintf("%T (object key)", k)}))
			}
			a.segs = append(a.segs, ks)
			cv, err := a.value(elem)
			if err != nil {
				return nil, err
			}
			a.segs = a.segs[:len(a.segs)-1]
			obj[ks] = cv
		}
		return obj, nil
	default:
		return nil, a.fail(newIssue(CodeInvalidValue, map[string]string{"type": fmt.Sprintf("%T", v)}))
	}
}

// number converts a literal kept verbatim by a UseNumber-style decoder.
// ParseFloat rounds to nearest like JavaScript; ErrRange with a finite
// result is underflow and the rounded value stands, while an infinite
// result means the literal does not fit.
func (a *adapter) number(lit string) (Value, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, a.fail(&Issue{Code: CodeInvalidValue, Message: "invalid number literal " + strconv.Quote(lit), Cause: err})
	}
	if math.IsInf(f, 0) {
		return nil, a.fail(newIssue(CodeNumberOutOfRange, map[string]string{"literal": lit}))
	}
	return Number(f), nil
}

func (a *adapter) fail(iss *Issue) error {
	if iss.Path == "" {
		iss.Path = jsonptr.FromSegments(a.segs)
	}
	return iss
}
