package domain

import (
	"errors"
	"fmt"
)

// Action names the operation a request was attempting.
type Action string

const (
	ActionAdd    Action = "add"
	ActionGet    Action = "get"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Reason identifies why a request was rejected.
type Reason string

const (
	ReasonMissingName              Reason = "missing_name"
	ReasonReadPageExceedsPageCount Reason = "read_page_exceeds_page_count"
	ReasonInvalidBody              Reason = "invalid_body"
)

var (
	// ErrBookNotFound is returned when no record carries the requested id.
	ErrBookNotFound = errors.New("book not found")

	// ErrInsertFailed is returned when a freshly appended record cannot be read back.
	ErrInsertFailed = errors.New("book not visible after insert")
)

// ValidationError is a client error that maps to 400.
type ValidationError struct {
	Action Action
	Reason Reason
	Err    error // underlying decode error, if any
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s book: %s: %v", e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s book: %s", e.Action, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }
