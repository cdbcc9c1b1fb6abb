package get_available_dates

import "errors"

var (
	// ErrInvalidInput is returned for requests with no usable postcodes or
	// an unknown booking type. Coverage gaps are not errors: an unknown but
	// well-formed postcode yields an empty result instead.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected use case failures
	ErrInternal = errors.New("usecase: internal error")
)
