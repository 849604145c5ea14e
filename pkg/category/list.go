package category

import (
	"math"

	"github.com/matzehuels/chartaxis/pkg/errors"
)

// List is the ordered category sequence of one series.
type List []Category

// Texts builds a Textual list.
func Texts(labels ...string) List {
	l := make(List, len(labels))
	for i, s := range labels {
		l[i] = Text(s)
	}
	return l
}

// Numbers builds a Numeric list.
func Numbers(values ...float64) List {
	l := make(List, len(values))
	for i, v := range values {
		l[i] = Number(v)
	}
	return l
}

// Equal reports whether l and o have the same length and pairwise equal elements.
func (l List) Equal(o List) bool {
	return l.Mismatch(o) < 0
}

// Mismatch returns the index of the first element where l and o differ, or
// -1 when they are equal. When one list is a prefix of the other the length
// of the shorter list is returned.
func (l List) Mismatch(o List) int {
	n := min(len(l), len(o))
	for i := 0; i < n; i++ {
		if !l[i].Equal(o[i]) {
			return i
		}
	}
	if len(l) != len(o) {
		return n
	}
	return -1
}

// CheckKind returns an error naming the first element whose kind is not k.
func (l List) CheckKind(k Kind) error {
	for i, c := range l {
		if c.Kind() != k {
			return errors.New(errors.ErrCodeInvalidInput, "category %d is %s on a %s axis", i, c.Kind(), k)
		}
	}
	return nil
}

// Extent returns the smallest and largest magnitude in l. ok is false when l
// has no Numeric or Instant element.
func (l List) Extent() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, c := range l {
		m := c.Magnitude()
		if math.IsNaN(m) {
			continue
		}
		lo = math.Min(lo, m)
		hi = math.Max(hi, m)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// Strings returns the canonical string form of every element.
func (l List) Strings() []string {
	out := make([]string, len(l))
	for i, c := range l {
		out[i] = c.String()
	}
	return out
}
