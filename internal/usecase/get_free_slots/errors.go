package get_free_slots

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("get_free_slots: invalid input data")

	// ErrInvalidTimezone is returned when the requested zone is not a
	// recognized IANA name.
	ErrInvalidTimezone = errors.New("get_free_slots: invalid timezone")

	// ErrInternal is returned for unexpected failures inside the use case.
	ErrInternal = errors.New("get_free_slots: internal error")
)
