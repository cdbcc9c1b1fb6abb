package areas

import "errors"

var (
	// ErrInvalidInput is returned for unusable requests (blank postcode, year out of range)
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
