package application

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hireloop/hireloop-api/internal/domain/entity"
	"github.com/hireloop/hireloop-api/internal/domain/repository"
)

// In-memory repository fakes. They implement the same contracts as the
// postgres implementations: Find returns (nil, nil) on absence, lists are
// ordered by id descending and sliced by Page/Size, writes return the
// stored row.

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// paginate mirrors limitOffset: size <= 0 means no limit, page starts at 1.
func paginate[T any](items []T, page, size int) []T {
	if size <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	lo := (page - 1) * size
	if lo >= len(items) {
		return []T{}
	}
	hi := lo + size
	if hi > len(items) {
		hi = len(items)
	}
	return items[lo:hi]
}

type fakeCandidateRepo struct {
	seq   int
	items map[string]*entity.Candidate
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{items: map[string]*entity.Candidate{}}
}

func (r *fakeCandidateRepo) nextID() string {
	r.seq++
	return fmt.Sprintf("cand-%03d", r.seq)
}

func (r *fakeCandidateRepo) Create(_ context.Context, d entity.CandidateDraft) (*entity.Candidate, error) {
	now := time.Now()
	c := entity.RestoreCandidate(r.nextID(), d, false, now, now)
	r.items[c.ID()] = c
	return c, nil
}

func (r *fakeCandidateRepo) Update(_ context.Context, c *entity.Candidate) (*entity.Candidate, error) {
	if _, ok := r.items[c.ID()]; !ok {
		return nil, repository.NewRepositoryError("Candidate", "update", fmt.Errorf("not found"))
	}
	r.items[c.ID()] = c
	return c, nil
}

func (r *fakeCandidateRepo) matches(c *entity.Candidate, f repository.CandidateFilter) bool {
	if f.ID != nil && c.ID() != *f.ID {
		return false
	}
	if f.Email != nil && c.Email() != *f.Email {
		return false
	}
	if f.CityID != nil {
		city, ok := c.CityID()
		if !ok || city != *f.CityID {
			return false
		}
	}
	if f.Name != nil {
		full := strings.ToLower(c.FirstName() + " " + c.LastName())
		if !strings.Contains(full, strings.ToLower(*f.Name)) {
			return false
		}
	}
	if len(f.IDs) > 0 {
		found := false
		for _, id := range f.IDs {
			if c.ID() == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// matching returns every match ordered by id descending.
func (r *fakeCandidateRepo) matching(f repository.CandidateFilter) []*entity.Candidate {
	out := []*entity.Candidate{}
	for _, c := range r.items {
		if r.matches(c, f) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() > out[j].ID() })
	return out
}

func (r *fakeCandidateRepo) Find(_ context.Context, f repository.CandidateFilter) (*entity.Candidate, error) {
	if m := r.matching(f); len(m) > 0 {
		return m[0], nil
	}
	return nil, nil
}

func (r *fakeCandidateRepo) FindMany(_ context.Context, f repository.CandidateFilter) ([]*entity.Candidate, error) {
	return paginate(r.matching(f), f.Page, f.Size), nil
}

func (r *fakeCandidateRepo) Count(_ context.Context, f repository.CandidateFilter) (int, error) {
	return len(r.matching(f)), nil
}

type fakeCityRepo struct {
	cities map[string]entity.City
}

func newFakeCityRepo(ids ...string) *fakeCityRepo {
	r := &fakeCityRepo{cities: map[string]entity.City{}}
	for _, id := range ids {
		r.cities[id] = entity.City{ID: id, Name: id, CountryCode: "XX"}
	}
	return r
}

func (r *fakeCityRepo) Find(_ context.Context, f repository.CityFilter) (*entity.City, error) {
	if f.ID != nil {
		if c, ok := r.cities[*f.ID]; ok {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeCityRepo) FindMany(_ context.Context, _ repository.CityFilter) ([]*entity.City, error) {
	out := []*entity.City{}
	for _, c := range r.cities {
		c := c
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeCityRepo) Count(_ context.Context, _ repository.CityFilter) (int, error) {
	return len(r.cities), nil
}

type fakeCompanyRepo struct {
	seq   int
	items map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{items: map[string]*entity.Company{}}
}

func (r *fakeCompanyRepo) Create(_ context.Context, d entity.CompanyDraft) (*entity.Company, error) {
	r.seq++
	now := time.Now()
	co := entity.RestoreCompany(fmt.Sprintf("co-%03d", r.seq), d, false, now, now)
	r.items[co.ID()] = co
	return co, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, co *entity.Company) (*entity.Company, error) {
	r.items[co.ID()] = co
	return co, nil
}

func (r *fakeCompanyRepo) matches(co *entity.Company, f repository.CompanyFilter) bool {
	if f.ID != nil && co.ID() != *f.ID {
		return false
	}
	if f.Name != nil && !strings.Contains(strings.ToLower(co.Name()), strings.ToLower(*f.Name)) {
		return false
	}
	if f.NameExact != nil && co.Name() != *f.NameExact {
		return false
	}
	if len(f.IDs) > 0 {
		found := false
		for _, id := range f.IDs {
			if co.ID() == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *fakeCompanyRepo) matching(f repository.CompanyFilter) []*entity.Company {
	out := []*entity.Company{}
	for _, co := range r.items {
		if r.matches(co, f) {
			out = append(out, co)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() > out[j].ID() })
	return out
}

func (r *fakeCompanyRepo) Find(_ context.Context, f repository.CompanyFilter) (*entity.Company, error) {
	if m := r.matching(f); len(m) > 0 {
		return m[0], nil
	}
	return nil, nil
}

func (r *fakeCompanyRepo) FindMany(_ context.Context, f repository.CompanyFilter) ([]*entity.Company, error) {
	return paginate(r.matching(f), f.Page, f.Size), nil
}

func (r *fakeCompanyRepo) Count(_ context.Context, f repository.CompanyFilter) (int, error) {
	return len(r.matching(f)), nil
}

type fakeLocationRepo struct {
	seq   int
	items map[string]*entity.CompanyLocation
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{items: map[string]*entity.CompanyLocation{}}
}

func (r *fakeLocationRepo) Create(_ context.Context, d entity.CompanyLocationDraft) (*entity.CompanyLocation, error) {
	r.seq++
	now := time.Now()
	l := entity.RestoreCompanyLocation(fmt.Sprintf("loc-%03d", r.seq), d, false, now, now)
	r.items[l.ID()] = l
	return l, nil
}

func (r *fakeLocationRepo) Update(_ context.Context, l *entity.CompanyLocation) (*entity.CompanyLocation, error) {
	if _, ok := r.items[l.ID()]; !ok {
		return nil, repository.NewRepositoryError("CompanyLocation", "update", fmt.Errorf("not found"))
	}
	r.items[l.ID()] = l
	return l, nil
}

func (r *fakeLocationRepo) matches(l *entity.CompanyLocation, f repository.CompanyLocationFilter) bool {
	if f.ID != nil && l.ID() != *f.ID {
		return false
	}
	if f.CompanyID != nil && l.CompanyID() != *f.CompanyID {
		return false
	}
	if f.CityID != nil {
		cityID, ok := l.CityID()
		if !ok || cityID != *f.CityID {
			return false
		}
	}
	if f.Name != nil {
		name, ok := l.Name()
		if !ok || name != *f.Name {
			return false
		}
	}
	if len(f.IDs) > 0 {
		found := false
		for _, id := range f.IDs {
			if l.ID() == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *fakeLocationRepo) matching(f repository.CompanyLocationFilter) []*entity.CompanyLocation {
	out := []*entity.CompanyLocation{}
	for _, l := range r.items {
		if r.matches(l, f) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() > out[j].ID() })
	return out
}

func (r *fakeLocationRepo) Find(_ context.Context, f repository.CompanyLocationFilter) (*entity.CompanyLocation, error) {
	if m := r.matching(f); len(m) > 0 {
		return m[0], nil
	}
	return nil, nil
}

func (r *fakeLocationRepo) FindMany(_ context.Context, f repository.CompanyLocationFilter) ([]*entity.CompanyLocation, error) {
	return paginate(r.matching(f), f.Page, f.Size), nil
}

func (r *fakeLocationRepo) Count(_ context.Context, f repository.CompanyLocationFilter) (int, error) {
	return len(r.matching(f)), nil
}

type fakeBlacklistRepo struct {
	seq   int
	items map[string]*entity.BlacklistToken
}

func newFakeBlacklistRepo() *fakeBlacklistRepo {
	return &fakeBlacklistRepo{items: map[string]*entity.BlacklistToken{}}
}

func (r *fakeBlacklistRepo) Create(_ context.Context, d entity.BlacklistTokenDraft) (*entity.BlacklistToken, error) {
	r.seq++
	t := entity.RestoreBlacklistToken(fmt.Sprintf("blk-%03d", r.seq), d, time.Now())
	r.items[t.Token()] = t
	return t, nil
}

func (r *fakeBlacklistRepo) Find(_ context.Context, f repository.BlacklistTokenFilter) (*entity.BlacklistToken, error) {
	if f.Token != nil {
		if t, ok := r.items[*f.Token]; ok {
			return t, nil
		}
	}
	if f.ID != nil {
		for _, t := range r.items {
			if t.ID() == *f.ID {
				return t, nil
			}
		}
	}
	return nil, nil
}

var (
	_ repository.CandidateRepository       = (*fakeCandidateRepo)(nil)
	_ repository.CityRepository            = (*fakeCityRepo)(nil)
	_ repository.CompanyRepository         = (*fakeCompanyRepo)(nil)
	_ repository.CompanyLocationRepository = (*fakeLocationRepo)(nil)
	_ repository.BlacklistTokenRepository  = (*fakeBlacklistRepo)(nil)
)
