package search

import "errors"

var ErrValidation = errors.New("validation error")
