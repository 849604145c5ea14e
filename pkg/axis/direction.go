package axis

import (
	"strings"

	"github.com/matzehuels/chartaxis/pkg/errors"
)

// Direction is the orientation of an axis on the plot.
type Direction uint8

const (
	// Horizontal is the X axis; categories run left to right.
	Horizontal Direction = iota
	// Vertical is the Y axis; a bar chart's value axis or a rotated category axis.
	Vertical
)

// String returns "horizontal" or "vertical".
func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDirection accepts horizontal/vertical as well as the x/y shorthands.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal", "x":
		return Horizontal, nil
	case "vertical", "y":
		return Vertical, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidDirection, "unknown direction %q (must be horizontal or vertical)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
