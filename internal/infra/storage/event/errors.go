package event

import "errors"

var (
	// ErrBuildQuery is returned when an SQL statement cannot be built.
	ErrBuildQuery = errors.New("event.repository: failed to build query")

	// ErrExecQuery is returned when an SQL statement fails to execute.
	ErrExecQuery = errors.New("event.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("event.repository: failed to scan row")
)
