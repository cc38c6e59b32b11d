package book_slot

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal is returned when the booking transaction fails for
	// reasons other than a slot conflict.
	ErrInternal = errors.New("book_slot: internal error")
)
