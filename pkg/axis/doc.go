// Package axis computes tick labels and tick positions for categorical axes.
//
// A categorical axis splits its tick band into one equal cell per category
// and centers a tick in every cell. [Calculate] is the entry point: it
// validates that every series carries the same categories, adjusts the axis
// range with [Adjust], picks a label formatter for the axis [category.Kind]
// and returns a [Ticks] value holding parallel label and location slices.
//
// # Geometry
//
// For a working space W, a tick-space percentage p and N categories:
//
//	tick_space = floor(p * W)
//	margin     = (W - tick_space) / 2
//	step       = tick_space / N
//	location_i = margin + step/2 + step*i
//
// Locations are measured in pixels from the working-space origin along the
// axis [Direction] and are never truncated; round at the rendering boundary
// if pixel alignment is required.
//
// # Formatters
//
// Numeric and Instant labels are produced by the [NumberFormatter] and
// [DateFormatter] interfaces supplied in [Request.Formatters]. The
// implementations in package format are the usual choice; tests can pass
// stubs. Textual labels use the category's canonical string form.
//
// Calculate is pure: it performs no I/O, keeps no state and never mutates
// its inputs, so it is safe to call from any number of goroutines.
package axis
