package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartaxis/pkg/axis"
	"github.com/matzehuels/chartaxis/pkg/chart"
	chartio "github.com/matzehuels/chartaxis/pkg/io"
	"github.com/matzehuels/chartaxis/pkg/observability"
	"github.com/matzehuels/chartaxis/pkg/style"
)

// Runner encapsulates pipeline execution.
// Both CLI and server use this to avoid duplicating the stage logic.
//
// The Runner is stateless except for the logger. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → calculate → export pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	c, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Chart = c
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.SeriesCount = len(c.Series())

	logger.Debug("loaded chart",
		"title", c.Title,
		"axis", c.Kind,
		"series", result.Stats.SeriesCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Calculate
	calcStart := time.Now()
	ticks, err := r.Calculate(ctx, c, opts)
	if err != nil {
		return nil, fmt.Errorf("calculate: %w", err)
	}
	result.Ticks = ticks
	result.Stats.CalculateTime = time.Since(calcStart)
	result.Stats.TickCount = ticks.Len()

	// Stage 3: Export
	exportStart := time.Now()
	artifacts, err := r.Export(ctx, ticks, opts)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.ExportTime = time.Since(exportStart)

	logger.Debug("exported ticks",
		"formats", opts.Formats,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// Load reads the chart named by the options, or returns opts.Chart when it
// is set. A style file, when given, replaces the style on a copy of the
// chart; opts.Chart itself is never modified.
func (r *Runner) Load(ctx context.Context, opts Options) (*chart.Chart, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := opts.Chart
	if c == nil {
		var err error
		if c, err = chart.Load(opts.ChartPath); err != nil {
			return nil, err
		}
	}
	if opts.StylePath != "" {
		s, err := style.LoadFile(opts.StylePath)
		if err != nil {
			return nil, err
		}
		c = c.WithStyle(s)
		r.logger(opts).Debug("applied style", "path", opts.StylePath)
	}
	return c, nil
}

// Calculate computes the ticks of the chart's axis, applying the direction
// and working space overrides in opts. The chart is not modified.
func (r *Runner) Calculate(ctx context.Context, c *chart.Chart, opts Options) (axis.Ticks, error) {
	if err := opts.ValidateForCalculate(); err != nil {
		return axis.Ticks{}, err
	}
	if err := ctx.Err(); err != nil {
		return axis.Ticks{}, err
	}

	dir, err := opts.ResolveDirection(c.Direction)
	if err != nil {
		return axis.Ticks{}, err
	}
	workingSpace := opts.ResolveWorkingSpace(c.WorkingSpace)
	kind := c.Kind.String()
	n := len(c.Categories())

	hooks := observability.Ticks()
	hooks.OnCalculateStart(ctx, kind, n)
	start := time.Now()
	ticks, err := c.TicksAt(dir, workingSpace)
	elapsed := time.Since(start)
	hooks.OnCalculateComplete(ctx, kind, n, elapsed, err)
	if err != nil {
		return axis.Ticks{}, err
	}

	r.logger(opts).Info("computed ticks",
		"axis", kind,
		"direction", dir,
		"working_space", workingSpace,
		"categories", n,
		"duration", elapsed)

	return ticks, nil
}

// Export encodes ticks in every requested format.
func (r *Runner) Export(ctx context.Context, ticks axis.Ticks, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForExport(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := chartio.Write(ticks, format, &buf); err != nil {
			return nil, fmt.Errorf("%s: %w", format, err)
		}
		artifacts[format] = buf.Bytes()
		observability.Ticks().OnExport(ctx, format, buf.Len())
	}
	return artifacts, nil
}

// logger returns the logger of opts, falling back to the runner's.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
