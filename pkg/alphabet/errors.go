package alphabet

import (
	"errors"
	"fmt"
)

// Encoding errors
var (
	ErrConflict        = errors.New("letter appears more than twice")
	ErrIdentifierCount = errors.New("emoji identifier list must have one entry per letter")
)

// ConflictError reports the word and letter that exceeded two occurrences.
type ConflictError struct {
	Word   string
	Letter byte
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("word %q: %c %s", e.Word, e.Letter, ErrConflict.Error())
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
