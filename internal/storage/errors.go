package storage

import "errors"

// Sentinel errors for errors.Is checks at the route boundary.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already in use")

	// ErrGeneral replaces backend errors that carry no information useful to
	// the client. The cause is logged by the adapter.
	ErrGeneral = errors.New("an error occurred on the server during your request")
)

// NotFoundError reports that an entity does not exist. Entity is the
// user-facing entity name, e.g. "Expense".
type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotFound returns a NotFoundError for the named entity.
func NotFound(entity string) error {
	return NotFoundError{Entity: entity}
}

// ConflictError reports a uniqueness violation on a field.
type ConflictError struct {
	Field string
}

func (e ConflictError) Error() string {
	return e.Field + " is already in use"
}

func (e ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// Conflict returns a ConflictError for the named field.
func Conflict(field string) error {
	return ConflictError{Field: field}
}
