// Package repository defines the persistence contracts consumed by the
// application layer. Implementations live under internal/infrastructure.
//
// Find returns (nil, nil) when nothing matches; absence is a normal result,
// never an error. Filters are combined with logical AND; list results are
// ordered by identifier descending so pagination is reproducible.
package repository

import (
	"context"

	"github.com/hireloop/hireloop-api/internal/domain/entity"
)

// CandidateFilter selects candidates. Name matches the concatenated first and
// last name, case-insensitive substring.
type CandidateFilter struct {
	ID     *string
	Email  *string
	CityID *string
	Name   *string
	IDs    []string
	Page   int
	Size   int
}

// CompanyFilter selects companies. Name is a case-insensitive substring
// match; NameExact matches the full name and backs the uniqueness check.
type CompanyFilter struct {
	ID        *string
	Name      *string
	NameExact *string
	IDs       []string
	Page      int
	Size      int
}

// CompanyLocationFilter selects company locations. Name is an exact match;
// it is used for the (name, companyId) uniqueness precondition.
type CompanyLocationFilter struct {
	ID        *string
	CompanyID *string
	CityID    *string
	Name      *string
	IDs       []string
	Page      int
	Size      int
}

// BlacklistTokenFilter selects blacklisted tokens.
type BlacklistTokenFilter struct {
	ID    *string
	Token *string
}

// CityFilter selects cities.
type CityFilter struct {
	ID   *string
	Name *string
	Page int
	Size int
}

// CandidateRepository persists candidates across the users root table and the
// candidates extension table. Create and Update are transactional across both.
type CandidateRepository interface {
	Create(ctx context.Context, draft entity.CandidateDraft) (*entity.Candidate, error)
	Update(ctx context.Context, c *entity.Candidate) (*entity.Candidate, error)
	Find(ctx context.Context, f CandidateFilter) (*entity.Candidate, error)
	FindMany(ctx context.Context, f CandidateFilter) ([]*entity.Candidate, error)
	Count(ctx context.Context, f CandidateFilter) (int, error)
}

type CompanyRepository interface {
	Create(ctx context.Context, draft entity.CompanyDraft) (*entity.Company, error)
	Update(ctx context.Context, c *entity.Company) (*entity.Company, error)
	Find(ctx context.Context, f CompanyFilter) (*entity.Company, error)
	FindMany(ctx context.Context, f CompanyFilter) ([]*entity.Company, error)
	Count(ctx context.Context, f CompanyFilter) (int, error)
}

type CompanyLocationRepository interface {
	Create(ctx context.Context, draft entity.CompanyLocationDraft) (*entity.CompanyLocation, error)
	Update(ctx context.Context, l *entity.CompanyLocation) (*entity.CompanyLocation, error)
	Find(ctx context.Context, f CompanyLocationFilter) (*entity.CompanyLocation, error)
	FindMany(ctx context.Context, f CompanyLocationFilter) ([]*entity.CompanyLocation, error)
	Count(ctx context.Context, f CompanyLocationFilter) (int, error)
}

// BlacklistTokenRepository persists revoked tokens. Tokens are create-only.
type BlacklistTokenRepository interface {
	Create(ctx context.Context, draft entity.BlacklistTokenDraft) (*entity.BlacklistToken, error)
	Find(ctx context.Context, f BlacklistTokenFilter) (*entity.BlacklistToken, error)
}

// CityRepository reads reference data; cities are seeded, never written here.
type CityRepository interface {
	Find(ctx context.Context, f CityFilter) (*entity.City, error)
	FindMany(ctx context.Context, f CityFilter) ([]*entity.City, error)
	Count(ctx context.Context, f CityFilter) (int, error)
}
