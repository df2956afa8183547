package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hireloop/hireloop-api/internal/domain/entity"
	"github.com/hireloop/hireloop-api/internal/domain/repository"
)

const cityEntity = "City"

const selectCity = `SELECT ci.id, ci.name, ci.country_code FROM cities ci`

// CityRepository reads seeded reference data.
type CityRepository struct {
	pool *pgxpool.Pool
}

func NewCityRepository(pool *pgxpool.Pool) *CityRepository {
	return &CityRepository{pool: pool}
}

func cityWhere(f repository.CityFilter) *where {
	w := &where{}
	if f.ID != nil {
		w.eq("ci.id", *f.ID)
	}
	if f.Name != nil {
		w.ilike("ci.name", *f.Name)
	}
	return w
}

func (r *CityRepository) Find(ctx context.Context, f repository.CityFilter) (*entity.City, error) {
	w := cityWhere(f)
	var c entity.City
	err := r.pool.QueryRow(ctx, selectCity+w.clause()+" ORDER BY ci.id DESC LIMIT 1", w.args...).
		Scan(&c.ID, &c.Name, &c.CountryCode)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, repository.NewRepositoryError(cityEntity, "find", err)
	}
	return &c, nil
}

func (r *CityRepository) FindMany(ctx context.Context, f repository.CityFilter) ([]*entity.City, error) {
	w := cityWhere(f)
	rows, err := r.pool.Query(ctx, selectCity+w.clause()+" ORDER BY ci.id DESC"+limitOffset(f.Page, f.Size), w.args...)
	if err != nil {
		return nil, repository.NewRepositoryError(cityEntity, "findMany", err)
	}
	defer rows.Close()

	out := make([]*entity.City, 0)
	for rows.Next() {
		var c entity.City
		if err := rows.Scan(&c.ID, &c.Name, &c.CountryCode); err != nil {
			return nil, repository.NewRepositoryError(cityEntity, "findMany", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.NewRepositoryError(cityEntity, "findMany", err)
	}
	return out, nil
}

func (r *CityRepository) Count(ctx context.Context, f repository.CityFilter) (int, error) {
	w := cityWhere(f)
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM cities ci`+w.clause(), w.args...).Scan(&n)
	if err != nil {
		return 0, repository.NewRepositoryError(cityEntity, "count", err)
	}
	return n, nil
}

var _ repository.CityRepository = (*CityRepository)(nil)
