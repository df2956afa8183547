package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hireloop/hireloop-api/internal/domain/entity"
	"github.com/hireloop/hireloop-api/internal/domain/repository"
)

// CompanyService covers employer accounts and their locations.
type CompanyService struct {
	Companies repository.CompanyRepository
	Locations repository.CompanyLocationRepository
	Cities    repository.CityRepository
	Logger    *logrus.Logger
}

func NewCompanyService(companies repository.CompanyRepository, locations repository.CompanyLocationRepository, cities repository.CityRepository, logger *logrus.Logger) *CompanyService {
	return &CompanyService{Companies: companies, Locations: locations, Cities: cities, Logger: logger}
}

type CreateCompanyInput struct {
	Name        string
	Website     *string
	Description *string
}

func (s *CompanyService) CreateCompany(ctx context.Context, in CreateCompanyInput) (*entity.Company, error) {
	s.Logger.WithFields(logrus.Fields{"name": in.Name}).Debug("creating company")

	if err := checkUniqueness(ctx, uniqueCheck{
		resource: "Company",
		fields:   map[string]any{"name": in.Name},
		conflict: func(ctx context.Context) (string, error) {
			existing, err := s.Companies.Find(ctx, repository.CompanyFilter{NameExact: &in.Name})
			if err != nil || existing == nil {
				return "", err
			}
			return existing.ID(), nil
		},
	}); err != nil {
		return nil, err
	}

	co, err := s.Companies.Create(ctx, entity.CompanyDraft{
		Name:        in.Name,
		Website:     in.Website,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"company_id": co.ID()}).Debug("company created")
	return co, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, id string) (*entity.Company, error) {
	co, err := s.Companies.Find(ctx, repository.CompanyFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if co == nil {
		return nil, &OperationNotValidError{Reason: "Company not found.", ID: id}
	}
	return co, nil
}

func (s *CompanyService) ListCompanies(ctx context.Context, f repository.CompanyFilter) ([]*entity.Company, int, error) {
	items, err := s.Companies.FindMany(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Companies.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

type CreateLocationInput struct {
	CompanyID string
	Name      string
	IsRemote  bool
	Address   *string
	CityID    *string
	Latitude  *float64
	Longitude *float64
}

// CreateLocation enforces the location shape invariants before persisting:
// a remote location carries no geography at all, and coordinates always
// travel together with an address and a city.
func (s *CompanyService) CreateLocation(ctx context.Context, in CreateLocationInput) (*entity.CompanyLocation, error) {
	s.Logger.WithFields(logrus.Fields{"company_id": in.CompanyID, "name": in.Name}).Debug("creating company location")

	if in.IsRemote && (in.Address != nil || in.CityID != nil || in.Latitude != nil || in.Longitude != nil) {
		return nil, &OperationNotValidError{Reason: "A remote location cannot carry an address, city, or coordinates."}
	}
	hasGeo := in.Address != nil || in.CityID != nil || in.Latitude != nil || in.Longitude != nil
	if !in.IsRemote && hasGeo {
		if in.Address == nil || in.CityID == nil || in.Latitude == nil || in.Longitude == nil {
			return nil, &OperationNotValidError{Reason: "Address, city, and coordinates must be provided together."}
		}
	}

	if err := checkReferences(ctx, refCheck{
		resource: "Company",
		id:       in.CompanyID,
		found: func(ctx context.Context) (bool, error) {
			co, err := s.Companies.Find(ctx, repository.CompanyFilter{ID: &in.CompanyID})
			return co != nil, err
		},
	}); err != nil {
		return nil, err
	}
	if in.CityID != nil {
		if err := checkReferences(ctx, refCheck{
			resource: "City",
			id:       *in.CityID,
			found: func(ctx context.Context) (bool, error) {
				city, err := s.Cities.Find(ctx, repository.CityFilter{ID: in.CityID})
				return city != nil, err
			},
		}); err != nil {
			return nil, err
		}
	}

	if err := checkUniqueness(ctx, uniqueCheck{
		resource: "CompanyLocation",
		fields:   map[string]any{"name": in.Name, "companyId": in.CompanyID},
		conflict: func(ctx context.Context) (string, error) {
			existing, err := s.Locations.Find(ctx, repository.CompanyLocationFilter{Name: &in.Name, CompanyID: &in.CompanyID})
			if err != nil || existing == nil {
				return "", err
			}
			return existing.ID(), nil
		},
	}); err != nil {
		return nil, err
	}

	loc, err := s.Locations.Create(ctx, entity.CompanyLocationDraft{
		CompanyID: in.CompanyID,
		IsRemote:  in.IsRemote,
		Name:      &in.Name,
		Address:   in.Address,
		CityID:    in.CityID,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
	})
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"location_id": loc.ID()}).Debug("company location created")
	return loc, nil
}

type UpdateLocationInput struct {
	Name      *string
	Address   *string
	CityID    *string
	Latitude  *float64
	Longitude *float64
}

func (s *CompanyService) UpdateLocation(ctx context.Context, id string, in UpdateLocationInput) (*entity.CompanyLocation, error) {
	s.Logger.WithFields(logrus.Fields{"location_id": id}).Debug("updating company location")

	loc, err := s.Locations.Find(ctx, repository.CompanyLocationFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, &OperationNotValidError{Reason: "CompanyLocation not found.", ID: id}
	}
	if loc.IsRemote() && (in.Address != nil || in.CityID != nil || in.Latitude != nil || in.Longitude != nil) {
		return nil, &OperationNotValidError{Reason: "A remote location cannot carry an address, city, or coordinates.", ID: id}
	}
	if (in.Latitude == nil) != (in.Longitude == nil) {
		return nil, &OperationNotValidError{Reason: "Latitude and longitude must be provided together.", ID: id}
	}

	if in.CityID != nil {
		if err := checkReferences(ctx, refCheck{
			resource: "City",
			id:       *in.CityID,
			found: func(ctx context.Context) (bool, error) {
				city, err := s.Cities.Find(ctx, repository.CityFilter{ID: in.CityID})
				return city != nil, err
			},
		}); err != nil {
			return nil, err
		}
	}
	if in.Name != nil {
		companyID := loc.CompanyID()
		if err := checkUniqueness(ctx, uniqueCheck{
			resource: "CompanyLocation",
			fields:   map[string]any{"name": *in.Name, "companyId": companyID},
			conflict: func(ctx context.Context) (string, error) {
				existing, err := s.Locations.Find(ctx, repository.CompanyLocationFilter{Name: in.Name, CompanyID: &companyID})
				if err != nil || existing == nil || existing.ID() == id {
					return "", err
				}
				return existing.ID(), nil
			},
		}); err != nil {
			return nil, err
		}
	}

	if in.Name != nil {
		loc.SetName(*in.Name)
	}
	if in.Address != nil {
		loc.SetAddress(*in.Address)
	}
	if in.CityID != nil {
		loc.SetCityID(*in.CityID)
	}
	if in.Latitude != nil {
		loc.SetLatitude(*in.Latitude)
	}
	if in.Longitude != nil {
		loc.SetLongitude(*in.Longitude)
	}

	updated, err := s.Locations.Update(ctx, loc)
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"location_id": id}).Debug("company location updated")
	return updated, nil
}

func (s *CompanyService) ListLocations(ctx context.Context, f repository.CompanyLocationFilter) ([]*entity.CompanyLocation, int, error) {
	items, err := s.Locations.FindMany(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Locations.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
