package canonjson

// Kind identifies the variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is the JSON value tree consumed by Serialize. The six concrete
// variants declared in this package (Null, Bool, Number, String, Array,
// Object) are the only conforming implementations; anything else is rejected
// with an invalid_value Issue. A nil Value is accepted and treated as Null.
//
// Serialize borrows the tree read-only for the duration of one call;
// serializing the same tree from several goroutines is safe as long as
// nobody mutates it concurrently.
type Value interface {
	Kind() Kind
}

// Null is the JSON null value.
type Null struct{}

// Bool is a JSON true/false value.
type Bool bool

// Number is a finite IEEE-754 double. NaN and the infinities are
// representable in the type but rejected at serialization with
// non_finite_number; negative zero serializes as "0".
type Number float64

// String holds UTF-8 encoded text, supplementary planes included. Byte
// sequences that encode surrogate code points (or are otherwise invalid
// UTF-8) are rejected at serialization.
type String string

// Array is an order-significant sequence of values.
type Array []Value

// Object maps member names to values. The map guarantees unique names;
// iteration order does not matter because Serialize orders members itself.
type Object map[string]Value

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }
