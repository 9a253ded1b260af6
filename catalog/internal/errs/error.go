package errs

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrHasDependents     = errors.New("entity has dependent records")
	ErrInvalidReference  = errors.New("referenced entity does not exist")
	ErrUnknownEntityKind = errors.New("unknown entity kind")
)
