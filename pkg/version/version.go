// Package version parses and compares loosely-formed mod version strings.
//
// Version strings in the wild range from clean semver ("1.2.3") through
// prefixed or suffixed forms ("v2.3.1-beta") to entirely non-numeric labels
// ("nightly"). Clean extracts the first dotted-numeric run; Compare orders
// two versions numerically when both parse, and otherwise only reports
// whether they differ.
package version

import (
	"strconv"
	"strings"
)

// Zero is the canonical version for strings with no numeric run.
const Zero = "0.0.0"

// Ordering is the result of comparing two version strings.
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// Clean extracts the first dotted-numeric run from v ("v2.3.1-beta" becomes
// "2.3.1"). Returns Zero when v contains no digit run.
func Clean(v string) string {
	comps, ok := parse(v)
	if !ok {
		return Zero
	}
	parts := make([]string, len(comps))
	for i, c := range comps {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".")
}

// Compare orders a against b. When both hold a dotted-numeric run the
// comparison is component-wise with missing trailing components treated as
// zero. Otherwise the fallback is case-insensitive equality of the original
// trimmed strings: Equal when they match, Greater when they differ. The
// fallback makes no ordering claim - Greater only signals "different", which
// callers read as "update available".
func Compare(a, b string) Ordering {
	ca, okA := parse(a)
	cb, okB := parse(b)

	if !okA || !okB {
		if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b)) {
			return Equal
		}
		return Greater
	}

	n := len(ca)
	if len(cb) > n {
		n = len(cb)
	}
	for i := 0; i < n; i++ {
		va, vb := 0, 0
		if i < len(ca) {
			va = ca[i]
		}
		if i < len(cb) {
			vb = cb[i]
		}
		switch {
		case va < vb:
			return Less
		case va > vb:
			return Greater
		}
	}
	return Equal
}

// parse extracts the leading dotted-digit run from v as numeric components.
// It scans to the first digit, then consumes digits and single interior dots.
// Reports false when v holds no digits at all.
func parse(v string) ([]int, bool) {
	i := 0
	for i < len(v) && !isDigit(v[i]) {
		i++
	}
	if i == len(v) {
		return nil, false
	}

	var comps []int
	cur := 0
	for ; i < len(v); i++ {
		c := v[i]
		switch {
		case isDigit(c):
			cur = cur*10 + int(c-'0')
		case c == '.' && i+1 < len(v) && isDigit(v[i+1]):
			comps = append(comps, cur)
			cur = 0
		default:
			comps = append(comps, cur)
			return comps, true
		}
	}
	comps = append(comps, cur)
	return comps, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
