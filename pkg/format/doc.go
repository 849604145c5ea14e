// Package format renders numeric and instant categories as tick labels.
//
// [Number] implements axis.NumberFormatter. It picks a decimal pattern per
// axis (direction specific, then general, then one derived from the axis
// range) and prints digits and separators for the configured locale through
// golang.org/x/text.
//
// [Date] implements axis.DateFormatter with a letter pattern in the
// yyyy-MM-dd HH:mm:ss.SSS family and a time zone. Month and weekday names
// come from github.com/goodsign/monday for the locale closest to the
// configured one.
//
// Both formatters are immutable after construction and safe for concurrent use.
package format
