package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequiredField    = errors.New("required field is empty")
	ErrTooManyImages    = errors.New("too many images")
	ErrInvalidImage     = errors.New("invalid image")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
