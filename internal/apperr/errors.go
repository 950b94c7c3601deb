// Package apperr defines the domain error taxonomy shared by the service
// layer and translated to HTTP status codes at the API boundary.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrBadgeNotFound is returned when a badge id does not resolve.
	ErrBadgeNotFound = errors.New("badge not found")
	// ErrEmailTaken is returned when the email uniqueness constraint is violated.
	ErrEmailTaken = errors.New("user already exists")
	// ErrInvalidCredentials is returned on any login failure. It deliberately
	// does not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrPayloadTooLarge is returned when an uploaded image exceeds the
	// configured size limit.
	ErrPayloadTooLarge = errors.New("image exceeds upload size limit")
)

// ValidationError carries per-field validation messages for a rejected
// submission. No mutation has happened when it is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// AsValidation unwraps err into a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// StorageError reports an asset store or delete that failed for a reason
// other than the object being absent.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// AsStorage unwraps err into a StorageError if it is one.
func AsStorage(err error) (*StorageError, bool) {
	var se *StorageError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
