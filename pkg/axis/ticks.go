package axis

import (
	"math"

	"github.com/matzehuels/chartaxis/pkg/category"
	"github.com/matzehuels/chartaxis/pkg/errors"
)

// NumberFormatter renders numeric category labels. min and max are the
// adjusted axis range so that every label on one axis can share a precision
// and notation.
type NumberFormatter interface {
	FormatNumber(v, min, max float64, dir Direction) string
}

// DateFormatter renders instant category labels from epoch milliseconds.
type DateFormatter interface {
	FormatInstant(ms int64) string
}

// Formatters holds the label formatters available to [Calculate]. Only the
// one matching the axis kind is consulted.
type Formatters struct {
	Number NumberFormatter
	Date   DateFormatter
}

// Config is the subset of the chart style the calculator reads.
type Config struct {
	TickSpacePercentage float64
	YAxisLogarithmic    bool
	DatePattern         string
}

// Series is one named category list. The first series of a request is the
// reference every other series is compared against.
type Series struct {
	Name       string
	Categories category.List
}

// Request is the input of one tick computation.
type Request struct {
	Direction    Direction
	WorkingSpace float64
	Min, Max     float64
	Kind         category.Kind
	Series       []Series
	Config       Config
	Formatters   Formatters
}

// Ticks is the output of [Calculate]. Labels[i] belongs at Locations[i].
type Ticks struct {
	Labels    []string  `json:"labels" toml:"labels"`
	Locations []float64 `json:"locations" toml:"locations"`

	TickSpace float64 `json:"tick_space" toml:"tick_space"`
	Margin    float64 `json:"margin" toml:"margin"`
	Step      float64 `json:"step" toml:"step"`
	Min       float64 `json:"min" toml:"min"`
	Max       float64 `json:"max" toml:"max"`
}

// Len returns the number of ticks.
func (t Ticks) Len() int { return len(t.Locations) }

// Calculate computes the tick labels and locations of a categorical axis.
// Nothing is returned alongside an error.
func Calculate(req Request) (Ticks, error) {
	if req.Kind == category.Instant && req.Config.DatePattern == "" {
		return Ticks{}, errors.New(errors.ErrCodeMissingFormatPattern, "%s axis: instant categories need a date pattern", req.Direction)
	}

	categories, err := categoriesOf(req)
	if err != nil {
		return Ticks{}, err
	}
	if err := categories.CheckKind(req.Kind); err != nil {
		return Ticks{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s axis, series %q", req.Direction, req.Series[0].Name)
	}

	lo, hi, err := Adjust(req.Direction, req.Min, req.Max, req.Config.YAxisLogarithmic)
	if err != nil {
		return Ticks{}, err
	}

	tickSpace, err := tickBand(req)
	if err != nil {
		return Ticks{}, err
	}

	label, err := labeler(req, lo, hi)
	if err != nil {
		return Ticks{}, err
	}

	var (
		n      = len(categories)
		margin = (req.WorkingSpace - tickSpace) / 2
		step   = tickSpace / float64(n)
		first  = step / 2
		out    = Ticks{
			Labels:    make([]string, n),
			Locations: make([]float64, n),
			TickSpace: tickSpace,
			Margin:    margin,
			Step:      step,
			Min:       lo,
			Max:       hi,
		}
	)
	for i, c := range categories {
		out.Labels[i] = label(c)
		out.Locations[i] = margin + first + step*float64(i)
	}
	return out, nil
}

// categoriesOf returns the reference category list after checking that every
// series carries an identical one.
func categoriesOf(req Request) (category.List, error) {
	if len(req.Series) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s axis: no series", req.Direction)
	}
	ref := req.Series[0]
	if len(ref.Categories) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s axis: series %q has no categories", req.Direction, ref.Name)
	}
	for _, s := range req.Series[1:] {
		if i := ref.Categories.Mismatch(s.Categories); i >= 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"%s axis: categories of series %q must exactly match series %q (first difference at index %d)",
				req.Direction, s.Name, ref.Name, i)
		}
	}
	return ref.Categories, nil
}

// tickBand returns floor(percent * working space) after validating both.
func tickBand(req Request) (float64, error) {
	if err := errors.ValidateWorkingSpace(req.WorkingSpace); err != nil {
		return 0, err
	}
	p := req.Config.TickSpacePercentage
	if math.IsNaN(p) || p <= 0 || p > 1 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s axis: tick space percentage must be in (0, 1], got %v", req.Direction, p)
	}
	ts := math.Floor(p * req.WorkingSpace)
	if ts <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s axis: working space %v leaves no room for ticks", req.Direction, req.WorkingSpace)
	}
	return ts, nil
}

func labeler(req Request, lo, hi float64) (func(category.Category) string, error) {
	switch req.Kind {
	case category.Numeric:
		nf := req.Formatters.Number
		if nf == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s axis: numeric categories need a number formatter", req.Direction)
		}
		return func(c category.Category) string {
			return nf.FormatNumber(c.Value(), lo, hi, req.Direction)
		}, nil
	case category.Instant:
		df := req.Formatters.Date
		if df == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s axis: instant categories need a date formatter", req.Direction)
		}
		return func(c category.Category) string {
			return df.FormatInstant(c.Millis())
		}, nil
	}
	return category.Category.String, nil
}
