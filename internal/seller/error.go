package seller

import "errors"

var (
	ErrNotFound          = errors.New("seller not found")
	ErrInvalid           = errors.New("invalid seller data")
	ErrAlreadyRegistered = errors.New("seller profile already exists for user")
)
