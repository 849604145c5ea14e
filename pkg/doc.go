// Package pkg provides the core libraries for chartaxis.
//
// # Overview
//
// Chartaxis lays out the ticks of a categorical chart axis: given the pixel
// extent of the axis and the category list shared by every series, it
// computes one label and one centered pixel offset per category. The pkg
// directory is organized into four main areas:
//
//  1. [axis] and [category] - Domain logic (categories, range adjustment, tick calculation)
//  2. [format] and [style] - Label formatting and the style that configures it
//  3. [chart] - The chart model and its TOML/JSON file format
//  4. [pipeline] - Orchestration (load → calculate → export)
//
// # Architecture
//
// The typical data flow through chartaxis:
//
//	Chart file (TOML/JSON)
//	         ↓
//	    [chart] package (series, axis type, style)
//	         ↓
//	    [style] + [format] packages (number and date formatters)
//	         ↓
//	    [axis] package (range adjustment + tick calculation)
//	         ↓
//	    [io] package (JSON/TOML/CSV output)
//
// # Quick Start
//
// Compute the ticks of a textual axis:
//
//	import (
//	    "github.com/matzehuels/chartaxis/pkg/category"
//	    "github.com/matzehuels/chartaxis/pkg/chart"
//	)
//
//	c := chart.New(category.Textual)
//	c.WorkingSpace = 300
//	c.Style.TickSpacePercentage = 1
//	_ = c.AddSeries("sales", category.Texts("A", "B", "C"), nil)
//
//	ticks, err := c.Ticks()
//	// ticks.Labels    = [A B C]
//	// ticks.Locations = [50 150 250]
//
// # Main Packages
//
// [category] - The tagged category value (text, number or instant) and
// strictly compared category lists.
//
// [axis] - The range adjuster and the tick calculator. Formatters are
// consumed through small interfaces so the calculator stays free of locale
// and pattern logic.
//
// [format] - Locale aware number and date formatters built on
// golang.org/x/text.
//
// [style] - The read-only style settings: tick band fraction, logarithmic
// flag, date pattern, locale, time zone and decimal patterns.
//
// [chart] - Ordered series with optional values, axis bounds and file
// loading.
//
// [pipeline] - The runner shared by the CLI and the HTTP server.
//
// ## Supporting Packages
//
// [errors] - Structured errors with machine-readable codes.
//
// [io] - Tick export to JSON, TOML and CSV.
//
// [observability] - Optional hooks for metrics and tracing.
//
// [buildinfo] - Version information set at build time.
package pkg
