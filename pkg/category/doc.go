// Package category models the discrete domain of a categorical chart axis.
//
// A categorical axis places ticks by the index of each category rather than
// by its magnitude. Categories come in three variants, declared once per
// axis through a [Kind]:
//
//   - [Textual]: a free-form label such as "Q1" or "Berlin"
//   - [Numeric]: a number used as a label, such as 2019 or 0.5
//   - [Instant]: a point in time with millisecond precision
//
// A [Category] is a small tagged value; code that needs to act on the
// variant switches on [Category.Kind] once. A [List] is the ordered sequence
// of categories carried by one series, and [List.Equal] implements the
// strict element-wise comparison every series on a chart must satisfy.
//
// Raw values read from chart files are converted with [FromValue], which
// accepts the Go types produced by the JSON and TOML decoders.
package category
