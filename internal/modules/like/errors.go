package like

import "errors"

var ErrAccommodationNotFound = errors.New("accommodation not found")
