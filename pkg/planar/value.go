package planar

import (
	"cmp"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// AttrColor is the conventional key for strand or bond colors. The color
// attribute takes part in endpoint hashing, so two endpoints that differ
// only in color hash differently.
const AttrColor = "color"

// ValueKind tags the type held by a [Value].
type ValueKind int

const (
	// KindBool is a boolean attribute value.
	KindBool ValueKind = iota
	// KindInt is an integer attribute value.
	KindInt
	// KindString is a string attribute value.
	KindString
)

// String returns the kind name: "bool", "int" or "string".
func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a small tagged attribute value: a bool, an int or a string.
// Restricting attributes to these kinds keeps attribute maps totally
// ordered and hashable, which comparison and canonicalization rely on.
// The zero value is the boolean false.
type Value struct {
	kind ValueKind
	b    bool
	i    int
	s    string
}

// BoolValue returns a boolean attribute value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// IntValue returns an integer attribute value.
func IntValue(i int) Value { return Value{kind: KindInt, i: i} }

// StringValue returns a string attribute value.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// Kind returns the tag of the value.
func (v Value) Kind() ValueKind { return v.kind }

// Bool returns the boolean and true if the value is a bool.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Int returns the integer and true if the value is an int.
func (v Value) Int() (int, bool) { return v.i, v.kind == KindInt }

// Text returns the string and true if the value is a string.
func (v Value) Text() (string, bool) { return v.s, v.kind == KindString }

// String returns a display form: "true", "42", or the quoted string.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.Itoa(v.i)
	default:
		return strconv.Quote(v.s)
	}
}

// Compare orders values by kind (bool < int < string), then by content,
// with false < true for booleans.
func (v Value) Compare(o Value) int {
	if c := cmp.Compare(v.kind, o.kind); c != 0 {
		return c
	}
	switch v.kind {
	case KindBool:
		switch {
		case v.b == o.b:
			return 0
		case o.b:
			return -1
		default:
			return 1
		}
	case KindInt:
		return cmp.Compare(v.i, o.i)
	default:
		return strings.Compare(v.s, o.s)
	}
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool { return v.Compare(o) == 0 }

// Attrs stores attribute key-value pairs attached to nodes, endpoints or the
// diagram itself. A nil map behaves as an empty one.
type Attrs map[string]Value

// Clone returns an independent copy of the map. Cloning nil returns nil.
func (a Attrs) Clone() Attrs { return maps.Clone(a) }

// Compare orders attribute maps by their sorted key-value pairs, with a
// shorter map that is a prefix of a longer one sorting first.
func (a Attrs) Compare(b Attrs) int {
	ka := slices.Sorted(maps.Keys(a))
	kb := slices.Sorted(maps.Keys(b))
	for i := 0; i < len(ka) && i < len(kb); i++ {
		if c := strings.Compare(ka[i], kb[i]); c != 0 {
			return c
		}
		if c := a[ka[i]].Compare(b[kb[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ka), len(kb))
}

// Equal reports whether two attribute maps hold the same pairs.
func (a Attrs) Equal(b Attrs) bool { return a.Compare(b) == 0 }
