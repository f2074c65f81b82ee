package booking

import "errors"

var (
	ErrValidation              = errors.New("invalid booking data")
	ErrNotFound                = errors.New("booking not found")
	ErrForbidden               = errors.New("not allowed")
	ErrDuplicateReference      = errors.New("duplicate reference code")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
