package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/matzehuels/chartaxis/pkg/axis"
	"github.com/matzehuels/chartaxis/pkg/errors"
)

// ScientificPattern is used for derived patterns when the axis range spans
// more than four orders of magnitude either way.
const ScientificPattern = "0.###E0"

// derivedMaxFraction caps the optional fraction digits of a derived fixed
// pattern. Distinct categories keep distinct labels up to float64 precision.
const derivedMaxFraction = 15

// NumberOptions are the decimal patterns a chart style may set. An empty
// pattern is not used.
type NumberOptions struct {
	DecimalPattern      string `json:"decimal_pattern,omitempty" toml:"decimal_pattern"`
	XAxisDecimalPattern string `json:"x_axis_decimal_pattern,omitempty" toml:"x_axis_decimal_pattern"`
	YAxisDecimalPattern string `json:"y_axis_decimal_pattern,omitempty" toml:"y_axis_decimal_pattern"`
}

// Number formats numeric tick labels.
type Number struct {
	printer *message.Printer
	general *decimalPattern
	x, y    *decimalPattern
	sci     *decimalPattern
}

// NewNumber returns a number formatter for tag. Invalid patterns in opts
// are reported as INVALID_FORMAT.
func NewNumber(tag language.Tag, opts NumberOptions) (*Number, error) {
	nf := Number{
		printer: message.NewPrinter(tag),
		sci:     mustParsePattern(ScientificPattern),
	}
	var err error
	if nf.general, err = parseOptional("decimal_pattern", opts.DecimalPattern); err != nil {
		return nil, err
	}
	if nf.x, err = parseOptional("x_axis_decimal_pattern", opts.XAxisDecimalPattern); err != nil {
		return nil, err
	}
	if nf.y, err = parseOptional("y_axis_decimal_pattern", opts.YAxisDecimalPattern); err != nil {
		return nil, err
	}
	return &nf, nil
}

// FormatNumber implements axis.NumberFormatter.
func (nf *Number) FormatNumber(v, min, max float64, dir axis.Direction) string {
	return nf.format(v, nf.patternFor(min, max, dir))
}

func (nf *Number) patternFor(min, max float64, dir axis.Direction) *decimalPattern {
	if dir == axis.Horizontal && nf.x != nil {
		return nf.x
	}
	if dir == axis.Vertical && nf.y != nil {
		return nf.y
	}
	if nf.general != nil {
		return nf.general
	}
	return nf.derive(min, max)
}

// derive chooses a pattern from the order of magnitude of the axis range:
// fixed notation padded to the same minimum fraction digits for every label
// on the axis, with further digits shown only when a value carries them, or
// scientific notation outside 1e-4..1e4.
func (nf *Number) derive(lo, hi float64) *decimalPattern {
	place := 0
	if diff := math.Abs(hi - lo); diff > 0 && !math.IsInf(diff, 0) {
		place = int(math.Floor(math.Log10(diff)))
	}
	if place < -4 || place > 4 {
		return nf.sci
	}
	frac := 1 - place
	if frac < 0 {
		frac = 0
	}
	return &decimalPattern{
		minInt:   1,
		minDec:   frac,
		maxDec:   max(frac, derivedMaxFraction),
		grouping: true,
	}
}

func (nf *Number) format(v float64, p *decimalPattern) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if p.scientific {
		return nf.formatScientific(v, p)
	}
	return nf.printer.Sprint(number.Decimal(v, p.options()...))
}

func (nf *Number) formatScientific(v float64, p *decimalPattern) string {
	exp := 0
	if v != 0 {
		exp = int(math.Floor(math.Log10(math.Abs(v))))
	}
	scale := math.Pow10(p.maxDec)
	mant := math.Round(v/math.Pow10(exp)*scale) / scale
	if math.Abs(mant) >= 10 {
		mant /= 10
		exp++
	}
	opts := append(p.options(), number.NoSeparator())
	return nf.printer.Sprint(number.Decimal(mant, opts...)) + "E" + strconv.Itoa(exp)
}

// decimalPattern is a parsed "#,##0.00" style pattern. A trailing "E0"
// selects scientific notation for the mantissa pattern before it.
type decimalPattern struct {
	minInt     int
	minDec     int
	maxDec     int
	grouping   bool
	scientific bool
}

func (p *decimalPattern) options() []number.Option {
	opts := []number.Option{
		number.MinIntegerDigits(max(p.minInt, 1)),
		number.MinFractionDigits(p.minDec),
		number.MaxFractionDigits(p.maxDec),
	}
	if !p.grouping {
		opts = append(opts, number.NoSeparator())
	}
	return opts
}

func parseOptional(key, pattern string) (*decimalPattern, error) {
	if pattern == "" {
		return nil, nil
	}
	p, err := parsePattern(pattern)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "%s %q", key, pattern)
	}
	return p, nil
}

func mustParsePattern(pattern string) *decimalPattern {
	p, err := parsePattern(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

func parsePattern(pattern string) (*decimalPattern, error) {
	var (
		p      decimalPattern
		zeroes = true
	)
	if i := strings.IndexAny(pattern, "Ee"); i >= 0 {
		if strings.Trim(pattern[i+1:], "0") != "" || i+1 == len(pattern) {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "malformed exponent")
		}
		p.scientific = true
		pattern = pattern[:i]
	}

	left, right, _ := strings.Cut(pattern, ".")
	if left == "" {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "missing integer part")
	}

	for i := 0; i < len(right); i++ {
		if zeroes && right[i] == '0' {
			p.minDec++
			p.maxDec++
		} else if right[i] == '#' {
			zeroes = false
			p.maxDec++
		} else {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unexpected character %q in fractional part", right[i])
		}
	}

	for i := len(left) - 1; i >= 0; i-- {
		switch left[i] {
		case ',':
			p.grouping = true
		case '0':
			p.minInt++
		case '#':
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unexpected character %q in integer part", left[i])
		}
	}
	if p.scientific {
		p.grouping = false
	}
	return &p, nil
}
