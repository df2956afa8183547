package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// OperationNotValidError means a precondition of the requested operation is
// unmet, typically a referenced entity that does not exist. The caller can
// recover by correcting input; it is not a storage failure.
type OperationNotValidError struct {
	Reason string
	ID     string
}

func (e *OperationNotValidError) Error() string {
	if e.ID == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s (id=%s)", e.Reason, e.ID)
}

// ResourceAlreadyExistsError means an application-level uniqueness
// precondition is violated. It carries the conflicting entity's identity and
// the distinguishing fields so callers can report a precise conflict.
type ResourceAlreadyExistsError struct {
	Resource string
	ID       string
	Fields   map[string]any
}

func (e *ResourceAlreadyExistsError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s %s already exists", e.Resource, e.ID)
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s %s already exists (%s)", e.Resource, e.ID, strings.Join(parts, ", "))
}

// IsNotValid reports whether err is an OperationNotValidError.
func IsNotValid(err error) bool {
	var e *OperationNotValidError
	return errors.As(err, &e)
}

// IsAlreadyExists reports whether err is a ResourceAlreadyExistsError.
func IsAlreadyExists(err error) bool {
	var e *ResourceAlreadyExistsError
	return errors.As(err, &e)
}
