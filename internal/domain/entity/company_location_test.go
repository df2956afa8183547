package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyLocationStateRemote(t *testing.T) {
	l := NewCompanyLocation("l1", CompanyLocationDraft{
		CompanyID: "co1",
		IsRemote:  true,
		Name:      Str("Anywhere"),
	})

	assert.Equal(t, map[string]any{
		"companyId": "co1",
		"isRemote":  true,
		"name":      "Anywhere",
	}, l.State())
}

func TestCompanyLocationStatePhysical(t *testing.T) {
	l := NewCompanyLocation("l1", CompanyLocationDraft{
		CompanyID: "co1",
		IsRemote:  false,
		Name:      Str("HQ"),
		Address:   Str("Herengracht 1"),
		CityID:    Str("ams"),
		Latitude:  F64(52.370216),
		Longitude: F64(4.895168),
	})

	assert.Equal(t, map[string]any{
		"companyId": "co1",
		"isRemote":  false,
		"name":      "HQ",
		"address":   "Herengracht 1",
		"cityId":    "ams",
		"latitude":  52.370216,
		"longitude": 4.895168,
	}, l.State())
}

func TestCompanyLocationZeroCoordinateIsAValue(t *testing.T) {
	l := NewCompanyLocation("l1", CompanyLocationDraft{
		CompanyID: "co1",
		Latitude:  F64(0),
		Longitude: F64(0),
	})

	lat, ok := l.Latitude()
	assert.True(t, ok, "coordinate 0 is present, not absent")
	assert.Equal(t, 0.0, lat)
	assert.Contains(t, l.State(), "latitude")
	assert.Contains(t, l.State(), "longitude")
}

func TestCompanyLocationAbsentFieldsProduceNoKeys(t *testing.T) {
	l := NewCompanyLocation("l1", CompanyLocationDraft{CompanyID: "co1"})

	state := l.State()
	assert.Len(t, state, 2, "only companyId and isRemote")
	assert.NotContains(t, state, "name")
	assert.NotContains(t, state, "address")
	assert.NotContains(t, state, "cityId")
	assert.NotContains(t, state, "latitude")
	assert.NotContains(t, state, "longitude")
}
