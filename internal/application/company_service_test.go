package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop-api/internal/domain/entity"
)

func newCompanyFixture(t *testing.T) (*CompanyService, *entity.Company) {
	t.Helper()
	svc := NewCompanyService(newFakeCompanyRepo(), newFakeLocationRepo(), newFakeCityRepo("ams", "ber"), testLogger())
	co, err := svc.CreateCompany(context.Background(), CreateCompanyInput{Name: "Acme"})
	require.NoError(t, err)
	return svc, co
}

func TestCreateCompanyDuplicateName(t *testing.T) {
	svc, co := newCompanyFixture(t)

	_, err := svc.CreateCompany(context.Background(), CreateCompanyInput{Name: "Acme"})

	require.Error(t, err)
	var dup *ResourceAlreadyExistsError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Company", dup.Resource)
	assert.Equal(t, co.ID(), dup.ID)
	assert.Equal(t, map[string]any{"name": "Acme"}, dup.Fields)
}

func TestGetCompanyNotFound(t *testing.T) {
	svc, _ := newCompanyFixture(t)

	_, err := svc.GetCompany(context.Background(), "missing")

	var nv *OperationNotValidError
	require.ErrorAs(t, err, &nv)
	assert.Equal(t, "Company not found.", nv.Reason)
}

func TestCreateLocationRemote(t *testing.T) {
	svc, co := newCompanyFixture(t)

	loc, err := svc.CreateLocation(context.Background(), CreateLocationInput{
		CompanyID: co.ID(),
		Name:      "Anywhere",
		IsRemote:  true,
	})

	require.NoError(t, err)
	assert.True(t, loc.IsRemote())
	_, ok := loc.Address()
	assert.False(t, ok)
}

func TestCreateLocationRemoteRejectsGeography(t *testing.T) {
	svc, co := newCompanyFixture(t)

	cases := []CreateLocationInput{
		{CompanyID: co.ID(), Name: "A", IsRemote: true, Address: entity.Str("x")},
		{CompanyID: co.ID(), Name: "B", IsRemote: true, CityID: entity.Str("ams")},
		{CompanyID: co.ID(), Name: "C", IsRemote: true, Latitude: entity.F64(1)},
		{CompanyID: co.ID(), Name: "D", IsRemote: true, Longitude: entity.F64(1)},
	}
	for _, in := range cases {
		_, err := svc.CreateLocation(context.Background(), in)
		assert.True(t, IsNotValid(err), "remote location with %q must be rejected", in.Name)
	}
}

func TestCreateLocationPhysicalRequiresFullGeography(t *testing.T) {
	svc, co := newCompanyFixture(t)

	_, err := svc.CreateLocation(context.Background(), CreateLocationInput{
		CompanyID: co.ID(),
		Name:      "HQ",
		Address:   entity.Str("Herengracht 1"),
		// city and coordinates missing
	})

	require.Error(t, err)
	var nv *OperationNotValidError
	require.ErrorAs(t, err, &nv)
	assert.Equal(t, "Address, city, and coordinates must be provided together.", nv.Reason)
}

func TestCreateLocationPhysical(t *testing.T) {
	svc, co := newCompanyFixture(t)

	loc, err := svc.CreateLocation(context.Background(), CreateLocationInput{
		CompanyID: co.ID(),
		Name:      "HQ",
		Address:   entity.Str("Herengracht 1"),
		CityID:    entity.Str("ams"),
		Latitude:  entity.F64(52.370216),
		Longitude: entity.F64(4.895168),
	})

	require.NoError(t, err)
	lat, ok := loc.Latitude()
	assert.True(t, ok)
	assert.Equal(t, 52.370216, lat)
}

func TestCreateLocationUnknownCompany(t *testing.T) {
	svc, _ := newCompanyFixture(t)

	_, err := svc.CreateLocation(context.Background(), CreateLocationInput{
		CompanyID: "missing", Name: "HQ", IsRemote: true,
	})

	var nv *OperationNotValidError
	require.ErrorAs(t, err, &nv)
	assert.Equal(t, "Company not found.", nv.Reason)
	assert.Equal(t, "missing", nv.ID)
}

func TestCreateLocationUnknownCity(t *testing.T) {
	svc, co := newCompanyFixture(t)

	_, err := svc.CreateLocation(context.Background(), CreateLocationInput{
		CompanyID: co.ID(),
		Name:      "HQ",
		Address:   entity.Str("Somewhere 1"),
		CityID:    entity.Str("atlantis"),
		Latitude:  entity.F64(1),
		Longitude: entity.F64(2),
	})

	var nv *OperationNotValidError
	require.ErrorAs(t, err, &nv)
	assert.Equal(t, "City not found.", nv.Reason)
}

func TestCreateLocationDuplicateNamePerCompany(t *testing.T) {
	svc, co := newCompanyFixture(t)

	first, err := svc.CreateLocation(context.Background(), CreateLocationInput{
		CompanyID: co.ID(), Name: "HQ", IsRemote: true,
	})
	require.NoError(t, err)

	_, err = svc.CreateLocation(context.Background(), CreateLocationInput{
		CompanyID: co.ID(), Name: "HQ", IsRemote: true,
	})

	var dup *ResourceAlreadyExistsError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "CompanyLocation", dup.Resource)
	assert.Equal(t, first.ID(), dup.ID)
	assert.Equal(t, map[string]any{"name": "HQ", "companyId": co.ID()}, dup.Fields)

	// The same name under another company is fine.
	other, err := svc.CreateCompany(context.Background(), CreateCompanyInput{Name: "Globex"})
	require.NoError(t, err)
	_, err = svc.CreateLocation(context.Background(), CreateLocationInput{
		CompanyID: other.ID(), Name: "HQ", IsRemote: true,
	})
	assert.NoError(t, err)
}

func TestUpdateLocation(t *testing.T) {
	svc, co := newCompanyFixture(t)

	loc, err := svc.CreateLocation(context.Background(), CreateLocationInput{
		CompanyID: co.ID(),
		Name:      "HQ",
		Address:   entity.Str("Herengracht 1"),
		CityID:    entity.Str("ams"),
		Latitude:  entity.F64(52.370216),
		Longitude: entity.F64(4.895168),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateLocation(context.Background(), loc.ID(), UpdateLocationInput{
		Name:      entity.Str("Amsterdam office"),
		Latitude:  entity.F64(52.0),
		Longitude: entity.F64(4.8),
	})

	require.NoError(t, err)
	name, _ := updated.Name()
	assert.Equal(t, "Amsterdam office", name)
	lat, _ := updated.Latitude()
	assert.Equal(t, 52.0, lat)
	addr, ok := updated.Address()
	assert.True(t, ok, "untouched fields survive the full-snapshot update")
	assert.Equal(t, "Herengracht 1", addr)
}

func TestUpdateLocationNotFound(t *testing.T) {
	svc, _ := newCompanyFixture(t)

	_, err := svc.UpdateLocation(context.Background(), "missing", UpdateLocationInput{Name: entity.Str("x")})

	var nv *OperationNotValidError
	require.ErrorAs(t, err, &nv)
	assert.Equal(t, "CompanyLocation not found.", nv.Reason)
}

func TestUpdateLocationRemoteCannotGainGeography(t *testing.T) {
	svc, co := newCompanyFixture(t)

	loc, err := svc.CreateLocation(context.Background(), CreateLocationInput{
		CompanyID: co.ID(), Name: "Anywhere", IsRemote: true,
	})
	require.NoError(t, err)

	_, err = svc.UpdateLocation(context.Background(), loc.ID(), UpdateLocationInput{
		Address: entity.Str("Herengracht 1"),
	})

	assert.True(t, IsNotValid(err))
}

func TestUpdateLocationCoordinatesTravelTogether(t *testing.T) {
	svc, co := newCompanyFixture(t)

	loc, err := svc.CreateLocation(context.Background(), CreateLocationInput{
		CompanyID: co.ID(),
		Name:      "HQ",
		Address:   entity.Str("Herengracht 1"),
		CityID:    entity.Str("ams"),
		Latitude:  entity.F64(52.370216),
		Longitude: entity.F64(4.895168),
	})
	require.NoError(t, err)

	_, err = svc.UpdateLocation(context.Background(), loc.ID(), UpdateLocationInput{
		Latitude: entity.F64(10),
	})

	var nv *OperationNotValidError
	require.ErrorAs(t, err, &nv)
	assert.Equal(t, "Latitude and longitude must be provided together.", nv.Reason)
}

func TestUpdateLocationNameConflictExcludesSelf(t *testing.T) {
	svc, co := newCompanyFixture(t)

	hq, err := svc.CreateLocation(context.Background(), CreateLocationInput{
		CompanyID: co.ID(), Name: "HQ", IsRemote: true,
	})
	require.NoError(t, err)
	lab, err := svc.CreateLocation(context.Background(), CreateLocationInput{
		CompanyID: co.ID(), Name: "Lab", IsRemote: true,
	})
	require.NoError(t, err)

	// Renaming to its own current name is not a conflict.
	_, err = svc.UpdateLocation(context.Background(), hq.ID(), UpdateLocationInput{Name: entity.Str("HQ")})
	assert.NoError(t, err)

	// Taking a sibling's name is.
	_, err = svc.UpdateLocation(context.Background(), lab.ID(), UpdateLocationInput{Name: entity.Str("HQ")})
	var dup *ResourceAlreadyExistsError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, hq.ID(), dup.ID)
}
