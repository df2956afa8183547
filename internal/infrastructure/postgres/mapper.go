package postgres

import (
	"fmt"
	"time"

	"github.com/hireloop/hireloop-api/internal/domain/entity"
)

// Row structs mirror the scanned column sets. Mapping is pure: a scanned row
// goes in, an entity comes out. A row violating the storage contract (missing
// identity, undecodable geometry) is a programmer error and panics instead of
// silently defaulting.

type candidateRow struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Deleted      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CityID       *string
	Headline     *string
	LinkedinURL  *string
	ResumeURL    *string
}

type companyRow struct {
	ID          string
	Name        string
	Website     *string
	Description *string
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type companyLocationRow struct {
	ID        string
	CompanyID string
	Name      *string
	IsRemote  bool
	Address   *string
	CityID    *string
	Geometry  *string // hex EWKB, nil when the location has no coordinates
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type blacklistTokenRow struct {
	ID        string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func mapCandidate(r candidateRow) *entity.Candidate {
	if r.ID == "" || r.Email == "" {
		panic(fmt.Sprintf("candidate row %q is missing required columns", r.ID))
	}
	return entity.RestoreCandidate(r.ID, entity.CandidateDraft{
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		CityID:       r.CityID,
		Headline:     r.Headline,
		LinkedinURL:  r.LinkedinURL,
		ResumeURL:    r.ResumeURL,
	}, r.Deleted, r.CreatedAt, r.UpdatedAt)
}

func mapCompany(r companyRow) *entity.Company {
	if r.ID == "" || r.Name == "" {
		panic(fmt.Sprintf("company row %q is missing required columns", r.ID))
	}
	return entity.RestoreCompany(r.ID, entity.CompanyDraft{
		Name:        r.Name,
		Website:     r.Website,
		Description: r.Description,
	}, r.Deleted, r.CreatedAt, r.UpdatedAt)
}

// mapCompanyLocation decodes the geometry column through the coordinate
// codec. A NULL geometry stays absent; it never turns into (0, 0).
func mapCompanyLocation(r companyLocationRow) *entity.CompanyLocation {
	if r.ID == "" || r.CompanyID == "" {
		panic(fmt.Sprintf("company location row %q is missing required columns", r.ID))
	}
	draft := entity.CompanyLocationDraft{
		CompanyID: r.CompanyID,
		IsRemote:  r.IsRemote,
		Name:      r.Name,
		Address:   r.Address,
		CityID:    r.CityID,
	}
	if r.Geometry != nil {
		lat, lon, err := DecodePoint(*r.Geometry)
		if err != nil {
			panic(fmt.Sprintf("company location row %q has undecodable geometry: %v", r.ID, err))
		}
		draft.Latitude = &lat
		draft.Longitude = &lon
	}
	return entity.RestoreCompanyLocation(r.ID, draft, r.Deleted, r.CreatedAt, r.UpdatedAt)
}

func mapBlacklistToken(r blacklistTokenRow) *entity.BlacklistToken {
	if r.ID == "" || r.Token == "" {
		panic(fmt.Sprintf("blacklist token row %q is missing required columns", r.ID))
	}
	return entity.RestoreBlacklistToken(r.ID, entity.BlacklistTokenDraft{
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
	}, r.CreatedAt)
}
