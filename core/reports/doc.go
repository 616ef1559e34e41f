// Package reports retrieves generated analytical reports and reconciles the
// fetch lifecycle into a single view state for the presentation layer:
// loading, ready, error, or empty.
//
// The report payload itself is opaque structured data. The controller checks
// only whether it is present; shape validation is the presentation layer's
// concern.
//
// Within one controller, a later-initiated fetch wins over an earlier one
// that settles out of order: results for a now-irrelevant report id are
// discarded rather than overwriting the current view. Failed fetches are
// never retried automatically; every retry is a new explicit call.
package reports
