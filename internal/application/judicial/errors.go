package judicial

import "errors"

var (
	ErrInvalidPersonalCode = errors.New("invalid personal code")
	ErrPersonNotFound      = errors.New("person not found")
	ErrGetPerson           = errors.New("failed to get person")
)
