package accommodation

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("accommodation not found")
	ErrInvalidAddress     = errors.New("address could not be resolved")
	ErrGeocodeUnavailable = errors.New("geocoding service unavailable")
)
