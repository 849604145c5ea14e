package axis

import (
	"math"

	"github.com/matzehuels/chartaxis/pkg/errors"
)

// Adjust returns the display range for an axis.
//
// On a vertical axis an all-positive range is anchored at zero from below
// and an all-negative range is anchored at zero from above, so bars grow
// from the baseline. A zero bound triggers neither clamp. When logarithmic
// is set the minimum becomes the largest power of ten not above the original
// min; this requires min > 0.
//
// Adjust does not reorder or validate min <= max.
func Adjust(dir Direction, min, max float64, logarithmic bool) (float64, float64, error) {
	lo, hi := min, max
	if dir == Vertical {
		if min > 0 && max > 0 {
			lo = 0
		} else if min < 0 && max < 0 {
			hi = 0
		}
	}

	if logarithmic {
		if !(min > 0) || math.IsInf(min, 1) {
			return 0, 0, errors.New(errors.ErrCodeInvalidInput, "%s axis: logarithmic scale needs a positive minimum, got %v", dir, min)
		}
		lo = floorPow10(min)
	}

	return lo, hi, nil
}

// floorPow10 returns the largest power of ten not above v. Log10 can land
// just beside an integer for exact powers, so the exponent is corrected
// against Pow10 in both directions.
func floorPow10(v float64) float64 {
	e := int(math.Floor(math.Log10(v)))
	if math.Pow10(e+1) <= v {
		e++
	} else if math.Pow10(e) > v {
		e--
	}
	return math.Pow10(e)
}
