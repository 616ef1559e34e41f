// Package tabular inspects local tabular data files before upload: format
// detection by extension and a cheap peek at row and column counts. The
// upload path itself never parses file contents; inspection is a convenience
// for the presentation layer.
package tabular
