package planar

import (
	"cmp"
	"strconv"
	"strings"
)

// Name identifies a node within a diagram. A name is either symbolic (a
// string such as "a", "k" or "aa") or an integer; diagrams normally use one
// scheme throughout, and [Diagram.UniqueNodeName] continues whichever scheme
// it finds.
//
// Names are totally ordered: integer names come before symbolic ones and
// compare numerically; symbolic names made entirely of ASCII letters compare
// by length and then letter rank with 'a' < … < 'z' < 'A' < … < 'Z', which
// is exactly the order of the bijective alphabetic sequence a, b, …, z,
// A, …, Z, aa, ab, …; any other strings compare by length and then bytes.
//
// The zero value is not a usable name - diagram operations reject it.
type Name struct {
	sym   string
	num   int
	isNum bool
}

// NameOf returns the symbolic name s.
func NameOf(s string) Name { return Name{sym: s} }

// IntName returns the integer name i.
func IntName(i int) Name { return Name{num: i, isNum: true} }

// IsInt reports whether the name is an integer name.
func (n Name) IsInt() bool { return n.isNum }

// Int returns the integer value and true for integer names,
// or 0 and false for symbolic names.
func (n Name) Int() (int, bool) { return n.num, n.isNum }

// IsZero reports whether the name is the unusable zero value.
func (n Name) IsZero() bool { return !n.isNum && n.sym == "" }

// String returns the display form: the symbol itself, or the decimal digits
// of an integer name.
func (n Name) String() string {
	if n.isNum {
		return strconv.Itoa(n.num)
	}
	return n.sym
}

// Compare three-way compares two names per the total order described on
// [Name]. It returns a negative number when n sorts before o, zero when they
// are equal, and a positive number otherwise.
func (n Name) Compare(o Name) int {
	if n.isNum != o.isNum {
		if n.isNum {
			return -1
		}
		return 1
	}
	if n.isNum {
		return cmp.Compare(n.num, o.num)
	}
	na, oa := isAlphabetic(n.sym), isAlphabetic(o.sym)
	switch {
	case na && oa:
		return compareAlphabetic(n.sym, o.sym)
	case na:
		return -1
	case oa:
		return 1
	}
	if c := cmp.Compare(len(n.sym), len(o.sym)); c != 0 {
		return c
	}
	return strings.Compare(n.sym, o.sym)
}

// letterRank maps 'a'..'z' to 0..25 and 'A'..'Z' to 26..51, matching the
// digit order of the bijective alphabetic sequence. Non-letters map to -1.
func letterRank(b byte) int {
	switch {
	case b >= 'a' && b <= 'z':
		return int(b - 'a')
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 26
	default:
		return -1
	}
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if letterRank(s[i]) < 0 {
			return false
		}
	}
	return true
}

// compareAlphabetic orders pure-letter names by length, then rank-wise.
// This is the sequence order a < b < … < z < A < … < Z < aa < ab < …
func compareAlphabetic(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	for i := 0; i < len(a); i++ {
		if c := cmp.Compare(letterRank(a[i]), letterRank(b[i])); c != 0 {
			return c
		}
	}
	return 0
}
