// Package application holds the use cases. Every action follows the same
// shape: log intent, verify referenced entities exist, verify uniqueness
// preconditions storage alone cannot express at this layer, mutate the
// entity, persist, log completion. Repository errors pass through untouched;
// only missing-reference and duplicate conditions are translated here.
package application

import "context"

// refCheck declares a referenced entity that must exist before an action may
// proceed. found reports existence; a storage error propagates as-is.
type refCheck struct {
	resource string
	id       string
	found    func(ctx context.Context) (bool, error)
}

// uniqueCheck declares a uniqueness precondition. conflict returns the id of
// an already-existing entity, or "" when the slot is free.
type uniqueCheck struct {
	resource string
	fields   map[string]any
	conflict func(ctx context.Context) (string, error)
}

func checkReferences(ctx context.Context, checks ...refCheck) error {
	for _, c := range checks {
		ok, err := c.found(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return &OperationNotValidError{Reason: c.resource + " not found.", ID: c.id}
		}
	}
	return nil
}

func checkUniqueness(ctx context.Context, checks ...uniqueCheck) error {
	for _, c := range checks {
		id, err := c.conflict(ctx)
		if err != nil {
			return err
		}
		if id != "" {
			return &ResourceAlreadyExistsError{Resource: c.resource, ID: id, Fields: c.fields}
		}
	}
	return nil
}
