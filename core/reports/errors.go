package reports

import "errors"

var (
	// ErrLoadFailed is returned when a report cannot be fetched. The
	// server-provided message is attached when present.
	ErrLoadFailed = errors.New("failed to load report")
	// ErrListFailed is returned when the report listing cannot be fetched.
	ErrListFailed = errors.New("failed to load reports")
)
