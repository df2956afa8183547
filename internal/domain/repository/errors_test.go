package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepositoryError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewRepositoryError("Candidate", "create", cause)

	assert.Equal(t, "Candidate repository: create failed: connection refused", err.Error())
	assert.ErrorIs(t, err, cause, "the storage cause stays reachable through Unwrap")

	var re *RepositoryError
	assert.ErrorAs(t, err, &re)
	assert.Equal(t, "Candidate", re.Entity)
	assert.Equal(t, "create", re.Op)
}
