package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateIdentifier matches a collection containing a repeated key.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")

	// ErrWriteFailed matches any failed create, update or delete of a record.
	ErrWriteFailed = errors.New("child record write failed")
)

// DuplicateIdentifierError reports a key that appears more than once in a collection.
type DuplicateIdentifierError struct {
	// Kind names the record kind, when known.
	Kind string
	// Side is "before" or "after".
	Side string
	// Key is the repeated identifier.
	Key any
}

func (e *DuplicateIdentifierError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("duplicate identifier %v in %s collection", e.Key, e.Side)
	}
	return fmt.Sprintf("duplicate %s identifier %v in %s collection", e.Kind, e.Key, e.Side)
}

func (e *DuplicateIdentifierError) Is(target error) bool {
	return target == ErrDuplicateIdentifier
}

// WriteError wraps a storage failure of a single planned action.
type WriteError struct {
	Kind   string
	Action ActionType
	Key    any
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to %s %s %v: %v", e.Action, e.Kind, e.Key, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailed
}
