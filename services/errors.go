package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// NotFoundError is returned when the requested row does not exist, and by
// list operations that are defined to fail on an empty result.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// AlreadyExistsError is returned when a uniqueness invariant would be
// violated. It is a business-rule rejection, never retried.
type AlreadyExistsError struct {
	Entity string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists", e.Entity)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsAlreadyExists reports whether err is an AlreadyExistsError.
func IsAlreadyExists(err error) bool {
	var ae *AlreadyExistsError
	return errors.As(err, &ae)
}

// notFoundOr translates gorm's record-not-found into the service taxonomy
// and passes every other error through untouched.
func notFoundOr(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity}
	}
	return err
}
