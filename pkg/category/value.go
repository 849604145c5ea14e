package category

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/chartaxis/pkg/errors"
)

// instantLayouts are tried in order when a string is read as an Instant.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FromValue converts a decoded JSON or TOML value into a category of kind k.
//
// Textual accepts any scalar and uses its plain string form. Numeric accepts
// integers, floats and numeric strings. Instant accepts time.Time (TOML
// datetimes), RFC 3339 or date strings, and integers taken as epoch
// milliseconds.
func FromValue(k Kind, v any) (Category, error) {
	switch k {
	case Textual:
		return textFromValue(v)
	case Numeric:
		return numberFromValue(v)
	case Instant:
		return instantFromValue(v)
	}
	return Category{}, errors.New(errors.ErrCodeInvalidInput, "unknown axis type %s", k)
}

// FromValues converts every element of vs with [FromValue].
func FromValues(k Kind, vs []any) (List, error) {
	l := make(List, len(vs))
	for i, v := range vs {
		c, err := FromValue(k, v)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "category %d", i)
		}
		l[i] = c
	}
	return l, nil
}

func textFromValue(v any) (Category, error) {
	switch x := v.(type) {
	case string:
		return Text(x), nil
	case time.Time:
		return Text(x.Format(time.RFC3339)), nil
	case nil:
		return Category{}, errors.New(errors.ErrCodeInvalidInput, "null category")
	}
	return Text(fmt.Sprint(v)), nil
}

func numberFromValue(v any) (Category, error) {
	switch x := v.(type) {
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Category{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "not a number: %q", x)
		}
		return Number(f), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return Category{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "not a number: %q", x)
		}
		return Number(f), nil
	}
	return Category{}, errors.New(errors.ErrCodeInvalidInput, "cannot use %T as a numeric category", v)
}

func instantFromValue(v any) (Category, error) {
	switch x := v.(type) {
	case time.Time:
		return Time(x), nil
	case int64:
		return EpochMillis(x), nil
	case int:
		return EpochMillis(int64(x)), nil
	case float64:
		return EpochMillis(int64(x)), nil
	case json.Number:
		ms, err := x.Int64()
		if err != nil {
			return Category{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "not epoch milliseconds: %q", x)
		}
		return EpochMillis(ms), nil
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range instantLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return Time(t), nil
			}
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return EpochMillis(ms), nil
		}
		return Category{}, errors.New(errors.ErrCodeInvalidInput, "not a date or time: %q", x)
	}
	return Category{}, errors.New(errors.ErrCodeInvalidInput, "cannot use %T as an instant category", v)
}
