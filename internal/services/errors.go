package services

import "errors"

// Error kinds. Handlers map these to HTTP statuses with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrBadCreds   = errors.New("invalid credentials")
)

// Error carries a caller-facing message alongside its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func validation(msg string) error { return &Error{Kind: ErrValidation, Message: msg} }
func notFound(msg string) error   { return &Error{Kind: ErrNotFound, Message: msg} }
func conflict(msg string) error   { return &Error{Kind: ErrConflict, Message: msg} }
func forbidden(msg string) error  { return &Error{Kind: ErrForbidden, Message: msg} }

// Owns is the single ownership predicate: the acting user must be the
// resource's owner.
func Owns(actingUserID, ownerID string) bool {
	return actingUserID != "" && actingUserID == ownerID
}
