package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop-api/internal/domain/entity"
)

func TestMapCandidate(t *testing.T) {
	now := time.Now()
	city := "ams"
	r := candidateRow{
		ID:           "c1",
		Email:        "ana@example.com",
		PasswordHash: "hash",
		FirstName:    "Ana",
		LastName:     "Silva",
		CreatedAt:    now,
		UpdatedAt:    now,
		CityID:       &city,
	}

	cand := mapCandidate(r)

	assert.Equal(t, "c1", cand.ID())
	assert.Equal(t, "ana@example.com", cand.Email())
	assert.Equal(t, "hash", cand.PasswordHash())
	gotCity, ok := cand.CityID()
	assert.True(t, ok)
	assert.Equal(t, "ams", gotCity)
	_, ok = cand.Headline()
	assert.False(t, ok, "unset optional stays absent")
	assert.Equal(t, now, cand.CreatedAt())
}

func TestMapCandidatePanicsOnMissingIdentity(t *testing.T) {
	assert.Panics(t, func() {
		mapCandidate(candidateRow{Email: "x@example.com"})
	})
	assert.Panics(t, func() {
		mapCandidate(candidateRow{ID: "c1"})
	})
}

func TestMapCompanyLocationWithGeometry(t *testing.T) {
	geo := EncodePoint(52.370216, 4.895168)
	name := "HQ"
	r := companyLocationRow{
		ID:        "l1",
		CompanyID: "co1",
		Name:      &name,
		Geometry:  &geo,
	}

	loc := mapCompanyLocation(r)

	lat, ok := loc.Latitude()
	require.True(t, ok)
	assert.Equal(t, 52.370216, lat)
	lon, ok := loc.Longitude()
	require.True(t, ok)
	assert.Equal(t, 4.895168, lon)
}

func TestMapCompanyLocationNullGeometryStaysAbsent(t *testing.T) {
	loc := mapCompanyLocation(companyLocationRow{ID: "l1", CompanyID: "co1", IsRemote: true})

	_, ok := loc.Latitude()
	assert.False(t, ok)
	_, ok = loc.Longitude()
	assert.False(t, ok)

	state := loc.State()
	assert.NotContains(t, state, "latitude")
	assert.NotContains(t, state, "longitude")
}

func TestMapCompanyLocationPanicsOnBadGeometry(t *testing.T) {
	bad := "nothex"
	assert.Panics(t, func() {
		mapCompanyLocation(companyLocationRow{ID: "l1", CompanyID: "co1", Geometry: &bad})
	})
}

func TestEncodeCoordinatesRequiresBoth(t *testing.T) {
	loc := entity.NewCompanyLocation("l1", entity.CompanyLocationDraft{CompanyID: "co1"})
	assert.Nil(t, encodeCoordinates(loc), "no coordinates, no geometry")

	loc.SetLatitude(52.0)
	assert.Nil(t, encodeCoordinates(loc), "half a pair stays NULL")

	loc.SetLongitude(4.9)
	g := encodeCoordinates(loc)
	require.NotNil(t, g)
	lat, lon, err := DecodePoint(*g)
	require.NoError(t, err)
	assert.Equal(t, 52.0, lat)
	assert.Equal(t, 4.9, lon)
}

func TestEncodeDraftCoordinates(t *testing.T) {
	assert.Nil(t, encodeDraftCoordinates(entity.CompanyLocationDraft{Latitude: entity.F64(1)}))

	g := encodeDraftCoordinates(entity.CompanyLocationDraft{
		Latitude:  entity.F64(-33.868820),
		Longitude: entity.F64(151.209290),
	})
	require.NotNil(t, g)
	lat, lon, err := DecodePoint(*g)
	require.NoError(t, err)
	assert.Equal(t, -33.868820, lat)
	assert.Equal(t, 151.209290, lon)
}
