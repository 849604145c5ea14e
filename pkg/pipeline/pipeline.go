// Package pipeline provides the tick computation pipeline for chartaxis.
//
// This package implements the complete load → calculate → export pipeline
// used by both the CLI and the HTTP server. By centralizing this logic we
// ensure every entry point validates, logs and instruments a computation the
// same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a chart file (TOML or JSON) and an optional style override
//  2. Calculate: Build the formatters and compute the axis ticks
//  3. Export: Encode the ticks in the requested formats (JSON, TOML, CSV)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    ChartPath:    "revenue.toml",
//	    WorkingSpace: 800,
//	    Formats:      []string{"json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data := result.Artifacts["json"]
//
// Run individual stages:
//
//	c, err := runner.Load(ctx, opts)
//	ticks, err := runner.Calculate(ctx, c, opts)
//	artifacts, err := runner.Export(ctx, ticks, opts)
package pipeline

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartaxis/pkg/axis"
	"github.com/matzehuels/chartaxis/pkg/chart"
	"github.com/matzehuels/chartaxis/pkg/errors"
	chartio "github.com/matzehuels/chartaxis/pkg/io"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

// DefaultFormat is the export format used when none is requested.
const DefaultFormat = chartio.FormatJSON

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the tick pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	ChartPath string `json:"chart_path,omitempty"`
	StylePath string `json:"style_path,omitempty"` // Replaces the chart's [style] table

	// Calculate options
	Direction    string  `json:"direction,omitempty"`     // Overrides the chart direction
	WorkingSpace float64 `json:"working_space,omitempty"` // Overrides the chart working space

	// Export options
	Formats []string `json:"formats,omitempty"`

	// Runtime options (not serialized)
	Chart  *chart.Chart `json:"-"` // Skips the load stage when set
	Logger *log.Logger  `json:"-"` // Overrides the runner's logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Chart is the chart the ticks were computed for.
	Chart *chart.Chart

	// Ticks are the computed labels and locations.
	Ticks axis.Ticks

	// Artifacts contains exported outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeriesCount   int
	TickCount     int
	LoadTime      time.Duration
	CalculateTime time.Duration
	ExportTime    time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(chartio.Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(chartio.Formats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForCalculate(); err != nil {
		return err
	}
	if err := o.ValidateForExport(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that a chart source is given.
func (o *Options) ValidateForLoad() error {
	if o.Chart == nil {
		if o.ChartPath == "" {
			return errors.New(errors.ErrCodeInvalidInput, "chart_path is required")
		}
		if err := errors.ValidatePath(o.ChartPath); err != nil {
			return err
		}
	}
	if o.StylePath != "" {
		if err := errors.ValidatePath(o.StylePath); err != nil {
			return err
		}
	}
	return nil
}

// ValidateForCalculate checks the direction and working space overrides.
func (o *Options) ValidateForCalculate() error {
	if o.Direction != "" {
		if _, err := axis.ParseDirection(o.Direction); err != nil {
			return err
		}
	}
	if o.WorkingSpace != 0 {
		if err := errors.ValidateWorkingSpace(o.WorkingSpace); err != nil {
			return err
		}
	}
	return nil
}

// SetExportDefaults sets default values for exporting.
func (o *Options) SetExportDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
}

// ValidateForExport validates and sets defaults for exporting.
func (o *Options) ValidateForExport() error {
	o.SetExportDefaults()
	return ValidateFormats(o.Formats)
}

// ResolveDirection returns the override direction, or def when none is set.
func (o *Options) ResolveDirection(def axis.Direction) (axis.Direction, error) {
	if o.Direction == "" {
		return def, nil
	}
	return axis.ParseDirection(o.Direction)
}

// ResolveWorkingSpace returns the override working space, or def when none is set.
func (o *Options) ResolveWorkingSpace(def float64) float64 {
	if o.WorkingSpace == 0 {
		return def
	}
	return o.WorkingSpace
}

// String summarizes the options for log lines.
func (o *Options) String() string {
	src := o.ChartPath
	if src == "" {
		src = "<in-memory>"
	}
	return fmt.Sprintf("chart=%s direction=%q working_space=%v formats=%v", src, o.Direction, o.WorkingSpace, o.Formats)
}
