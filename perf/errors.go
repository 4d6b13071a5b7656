package perf

import "errors"

var (
	// ErrUnknownCase is returned by Lookup for a name that was never registered.
	ErrUnknownCase = errors.New("perf: unknown case")

	// ErrDuplicateCase is returned when a case name is registered twice.
	ErrDuplicateCase = errors.New("perf: duplicate case")

	// ErrInvalidCase is returned for a case with an empty name or nil Func.
	ErrInvalidCase = errors.New("perf: invalid case")

	// ErrBadRepetitions is returned for a repetition count below one.
	ErrBadRepetitions = errors.New("perf: repetitions must be positive")

	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("perf: invalid config")
)
