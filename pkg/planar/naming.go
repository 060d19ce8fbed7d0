package planar

import "slices"

const (
	lowerDigits = "abcdefghijklmnopqrstuvwxyz"
	alphaDigits = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// AlphabeticName returns the 1-based ordinal's name in the bijective
// alphabetic sequence a, b, …, z, A, …, Z, aa, ab, … used by
// canonicalization. Ordinals below 1 return the zero name.
func AlphabeticName(ordinal int) Name {
	if ordinal < 1 {
		return Name{}
	}
	return NameOf(bijective(ordinal, alphaDigits))
}

// bijective renders a 1-based ordinal in bijective numeration over the
// given digit set: there is no zero digit, so "a" follows "" and "aa"
// follows the last single digit.
func bijective(n int, digits string) string {
	k := len(digits)
	var buf []byte
	for n > 0 {
		n--
		buf = append(buf, digits[n%k])
		n /= k
	}
	slices.Reverse(buf)
	return string(buf)
}

// bijectiveOrdinal inverts bijective for names drawn purely from the digit
// set, returning the 1-based ordinal and true, or 0 and false.
func bijectiveOrdinal(s string, digits string) (int, bool) {
	if s == "" {
		return 0, false
	}
	k := len(digits)
	n := 0
	for i := 0; i < len(s); i++ {
		r := -1
		for j := 0; j < k; j++ {
			if digits[j] == s[i] {
				r = j
				break
			}
		}
		if r < 0 {
			return 0, false
		}
		n = n*k + r + 1
	}
	return n, true
}

// UniqueNodeName returns a fresh name continuing the diagram's naming
// scheme: the next integer after the maximum when every existing name is an
// integer, otherwise the successor of the maximal lowercase alphabetic name
// in the bijective sequence a, …, z, aa, ab, … (so {"a","b","z"} yields
// "aa"). The result never collides with an existing name. An empty diagram
// yields "a".
func (d *Diagram) UniqueNodeName() Name {
	return d.freshNames(1)[0]
}

// UniqueNodeNames returns count fresh, pairwise distinct names, continuing
// the scheme the same way as [Diagram.UniqueNodeName].
func (d *Diagram) UniqueNodeNames(count int) []Name {
	if count < 1 {
		return nil
	}
	return d.freshNames(count)
}

func (d *Diagram) freshNames(count int) []Name {
	allInt := len(d.nodes) > 0
	haveInt := false
	maxInt := 0
	maxOrd := 0
	for name := range d.nodes {
		if i, ok := name.Int(); ok {
			if !haveInt || i > maxInt {
				maxInt = i
			}
			haveInt = true
			continue
		}
		allInt = false
		if ord, ok := bijectiveOrdinal(name.sym, lowerDigits); ok && ord > maxOrd {
			maxOrd = ord
		}
	}

	names := make([]Name, 0, count)
	if allInt {
		for i := 0; i < count; i++ {
			names = append(names, IntName(maxInt+1+i))
		}
		return names
	}
	for i := 0; i < count; i++ {
		names = append(names, NameOf(bijective(maxOrd+1+i, lowerDigits)))
	}
	return names
}
