package repository

import "fmt"

// RepositoryError wraps any storage-layer failure (connectivity, constraint
// violation, malformed result) with the entity and operation that hit it.
// Raw driver errors never cross the repository boundary.
type RepositoryError struct {
	Entity string
	Op     string
	Err    error
}

func NewRepositoryError(entity, op string, err error) *RepositoryError {
	return &RepositoryError{Entity: entity, Op: op, Err: err}
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s repository: %s failed: %v", e.Entity, e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }
