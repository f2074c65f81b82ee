package settlement

import "errors"

var (
	ErrValidation     = errors.New("invalid settlement query")
	ErrVendorNotFound = errors.New("vendor not found")
)
