package speller

import (
	"errors"
	"fmt"
)

// Run outcome errors
var (
	ErrRetryRequested      = errors.New("message must be resupplied")
	ErrEmptyMessage        = errors.New("message has no words")
	ErrInsufficientHistory = errors.New("not enough messages after the starting message")
	ErrDispatchFailed      = errors.New("failed to add reactions")
)

// RetryError marks an outcome the caller can recover from by supplying a
// different message or starting point.
type RetryError struct {
	Reason error
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("%v: %v", ErrRetryRequested, e.Reason)
}

func (e *RetryError) Unwrap() []error {
	return []error{ErrRetryRequested, e.Reason}
}

// InsufficientHistoryError reports how many target messages were found.
type InsufficientHistoryError struct {
	Have int
	Need int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("not enough messages (%d) to react to all words (%d)", e.Have, e.Need)
}

func (e *InsufficientHistoryError) Unwrap() error {
	return ErrInsufficientHistory
}

// DispatchError stops a run: the reactions for Word could not all be added.
type DispatchError struct {
	Word      string
	MessageID string
	Err       error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("word %q on message %s: %v", e.Word, e.MessageID, e.Err)
}

func (e *DispatchError) Unwrap() []error {
	return []error{ErrDispatchFailed, e.Err}
}
