package category

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/chartaxis/pkg/errors"
)

// Kind is the axis type tag. Every category on one axis has the same kind.
type Kind uint8

const (
	Textual Kind = iota
	Numeric
	Instant
)

var kindNames = map[Kind]string{
	Textual: "textual",
	Numeric: "numeric",
	Instant: "instant",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind converts a kind name to a Kind. Besides the canonical names it
// accepts the common aliases string/text, number and date/time.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "textual", "text", "string":
		return Textual, nil
	case "numeric", "number":
		return Numeric, nil
	case "instant", "date", "time", "datetime":
		return Instant, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown axis type %q (must be one of: textual, numeric, instant)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Category is one element of a categorical axis domain.
// The zero value is the empty Textual category.
type Category struct {
	kind Kind
	text string
	num  float64
	ms   int64
}

// Text returns a Textual category.
func Text(s string) Category {
	return Category{kind: Textual, text: s}
}

// Number returns a Numeric category.
func Number(v float64) Category {
	return Category{kind: Numeric, num: v}
}

// Time returns an Instant category. Precision below a millisecond is dropped.
func Time(t time.Time) Category {
	return Category{kind: Instant, ms: t.UnixMilli()}
}

// EpochMillis returns an Instant category from milliseconds since the Unix epoch.
func EpochMillis(ms int64) Category {
	return Category{kind: Instant, ms: ms}
}

// Kind reports the variant of c.
func (c Category) Kind() Kind { return c.kind }

// Label returns the text of a Textual category and "" otherwise.
func (c Category) Label() string { return c.text }

// Value returns the number of a Numeric category and 0 otherwise.
func (c Category) Value() float64 { return c.num }

// Millis returns the epoch milliseconds of an Instant category and 0 otherwise.
func (c Category) Millis() int64 { return c.ms }

// Time returns the instant of an Instant category in UTC.
func (c Category) Time() time.Time { return time.UnixMilli(c.ms).UTC() }

// Magnitude returns the position of c on a continuous scale: the number for
// Numeric, epoch milliseconds for Instant, and NaN for Textual.
func (c Category) Magnitude() float64 {
	switch c.kind {
	case Numeric:
		return c.num
	case Instant:
		return float64(c.ms)
	}
	return math.NaN()
}

// String returns the canonical string form of c.
func (c Category) String() string {
	switch c.kind {
	case Numeric:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case Instant:
		return c.Time().Format("2006-01-02T15:04:05.000Z07:00")
	}
	return c.text
}

// Equal reports whether c and o have the same kind and value. A numeric NaN
// equals another NaN so a list always equals itself.
func (c Category) Equal(o Category) bool {
	if c.kind != o.kind {
		return false
	}
	switch c.kind {
	case Numeric:
		return c.num == o.num || (math.IsNaN(c.num) && math.IsNaN(o.num))
	case Instant:
		return c.ms == o.ms
	}
	return c.text == o.text
}
