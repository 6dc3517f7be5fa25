// Package repository wraps gorm access to venues, artists and shows. Every
// write runs in its own transaction, committed on success and rolled back on
// any error, so callers never see a partial write.
package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("record not found")

// PersistenceError reports a write that failed after input was accepted.
// The enclosing transaction has already been rolled back.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
