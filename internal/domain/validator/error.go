package validator

import "errors"

var ErrValidation = errors.New("validation error")
