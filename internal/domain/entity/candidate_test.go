package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCandidateStateContainsOnlyPresentFields(t *testing.T) {
	c := NewCandidate("c1", CandidateDraft{
		Email:        "ana@example.com",
		PasswordHash: "hash",
		FirstName:    "Ana",
		LastName:     "Silva",
		Headline:     Str("Backend engineer"),
	})

	state := c.State()

	assert.Equal(t, map[string]any{
		"email":     "ana@example.com",
		"firstName": "Ana",
		"lastName":  "Silva",
		"headline":  "Backend engineer",
	}, state)
	assert.NotContains(t, state, "passwordHash", "password hash never leaves State")
	assert.NotContains(t, state, "cityId")
}

func TestCandidateEmptyStringIsAValue(t *testing.T) {
	c := NewCandidate("c1", CandidateDraft{
		Email:     "ana@example.com",
		FirstName: "Ana",
		LastName:  "Silva",
		Headline:  Str(""),
	})

	got, ok := c.Headline()
	assert.True(t, ok, "empty string is present, not absent")
	assert.Equal(t, "", got)
	assert.Contains(t, c.State(), "headline")
}

func TestCandidateSettersOverwriteNeverClear(t *testing.T) {
	c := NewCandidate("c1", CandidateDraft{Email: "a@example.com", FirstName: "Ana", LastName: "Silva"})

	_, ok := c.CityID()
	assert.False(t, ok)

	c.SetCityID("ber")
	got, ok := c.CityID()
	assert.True(t, ok)
	assert.Equal(t, "ber", got)

	c.SetCityID("ams")
	got, _ = c.CityID()
	assert.Equal(t, "ams", got)
}

func TestCandidateDraftIsCopiedNotAliased(t *testing.T) {
	city := "ams"
	c := NewCandidate("c1", CandidateDraft{Email: "a@example.com", CityID: &city})

	city = "ber"
	got, _ := c.CityID()
	assert.Equal(t, "ams", got, "later draft mutation does not leak into the entity")
}

func TestRestoreCandidateKeepsStorageMetadata(t *testing.T) {
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	c := RestoreCandidate("c1", CandidateDraft{Email: "a@example.com"}, true, created, updated)

	assert.Equal(t, "c1", c.ID())
	assert.True(t, c.Deleted())
	assert.Equal(t, created, c.CreatedAt())
	assert.Equal(t, updated, c.UpdatedAt())
}
