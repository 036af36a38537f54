// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Database errors.
	ErrNotFound = errors.New("not found")
	ErrStore    = errors.New("category store failure")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// StoreError reports a failure to reach or write to the category store.
// Connectivity, constraint and permission failures are not distinguished.
type StoreError struct {
	Err error
	// Op is the store operation that failed, e.g. "open", "update", "close".
	Op string
	// Name is the catalog entry being applied, if any.
	Name string
}

func (e *StoreError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s %q: %v", ErrStore, e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrStore, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is makes every StoreError match ErrStore.
func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

// NewStoreError wraps err as a StoreError. It returns nil for a nil err.
func NewStoreError(op, name string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Name: name, Err: err}
}
