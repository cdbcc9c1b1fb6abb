package schedule

import "errors"

var (
	// ErrInvalidAnchor is returned when a round's anchor label cannot be parsed
	ErrInvalidAnchor = errors.New("invalid anchor label")

	// ErrInvalidTable is returned when a loaded schedule table fails validation
	ErrInvalidTable = errors.New("invalid schedule table")

	// ErrLoadTable is returned when the schedule file cannot be read or decoded
	ErrLoadTable = errors.New("failed to load schedule table")
)
