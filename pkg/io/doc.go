// Package io serializes computed axis ticks.
//
// # Formats
//
// Three formats are supported, selected by name or file extension:
//
//   - json: the [axis.Ticks] object with its derived geometry
//   - toml: the same fields as a TOML document
//   - csv:  one row per tick with index, label and location columns
//
// JSON output looks like:
//
//	{
//	  "labels": ["Q1", "Q2", "Q3", "Q4"],
//	  "locations": [82.5, 237.5, 392.5, 547.5],
//	  "tick_space": 620,
//	  "margin": 10,
//	  "step": 155,
//	  "min": 0,
//	  "max": 22
//	}
//
// # Export
//
// Use [Write] to encode to any io.Writer, or [Export] to write a file whose
// format follows its extension:
//
//	err := io.Export(ticks, "axis.csv")
//
// [axis.Ticks]: github.com/matzehuels/chartaxis/pkg/axis.Ticks
package io
