package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hireloop/hireloop-api/internal/domain/entity"
	"github.com/hireloop/hireloop-api/internal/domain/repository"
)

const companyLocationEntity = "CompanyLocation"

// coordinates travels as hex EWKB text both ways; $n::geometry on writes,
// ::text on reads. See geometry.go.
const selectCompanyLocation = `
	SELECT l.id, l.company_id, l.name, l.is_remote, l.address, l.city_id,
	       l.coordinates::text, l.is_deleted, l.created_at, l.updated_at
	FROM company_locations l`

type CompanyLocationRepository struct {
	pool  *pgxpool.Pool
	newID func() string
}

func NewCompanyLocationRepository(pool *pgxpool.Pool) *CompanyLocationRepository {
	return &CompanyLocationRepository{pool: pool, newID: uuid.NewString}
}

func companyLocationWhere(f repository.CompanyLocationFilter) *where {
	w := &where{}
	w.raw("NOT l.is_deleted")
	if f.ID != nil {
		w.eq("l.id", *f.ID)
	}
	if f.CompanyID != nil {
		w.eq("l.company_id", *f.CompanyID)
	}
	if f.CityID != nil {
		w.eq("l.city_id", *f.CityID)
	}
	if f.Name != nil {
		w.eq("l.name", *f.Name)
	}
	if len(f.IDs) > 0 {
		w.in("l.id", f.IDs)
	}
	return w
}

// encodeCoordinates folds a presence-tracked latitude/longitude pair into a
// nullable geometry argument. Half-set pairs stay NULL; coordinates only
// travel together.
func encodeCoordinates(l *entity.CompanyLocation) *string {
	lat, okLat := l.Latitude()
	lon, okLon := l.Longitude()
	if !okLat || !okLon {
		return nil
	}
	g := EncodePoint(lat, lon)
	return &g
}

func encodeDraftCoordinates(d entity.CompanyLocationDraft) *string {
	if d.Latitude == nil || d.Longitude == nil {
		return nil
	}
	g := EncodePoint(*d.Latitude, *d.Longitude)
	return &g
}

func (r *CompanyLocationRepository) Create(ctx context.Context, draft entity.CompanyLocationDraft) (*entity.CompanyLocation, error) {
	id := r.newID()
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO company_locations (id, company_id, name, is_remote, address, city_id, coordinates)
			VALUES ($1, $2, $3, $4, $5, $6, $7::geometry)
		`, id, draft.CompanyID, draft.Name, draft.IsRemote, draft.Address, draft.CityID, encodeDraftCoordinates(draft))
		return err
	})
	if err != nil {
		return nil, repository.NewRepositoryError(companyLocationEntity, "create", err)
	}
	return r.mustFind(ctx, id, "create")
}

func (r *CompanyLocationRepository) Update(ctx context.Context, l *entity.CompanyLocation) (*entity.CompanyLocation, error) {
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE company_locations
			SET name = $2, address = $3, city_id = $4, coordinates = $5::geometry, updated_at = now()
			WHERE id = $1 AND NOT is_deleted
		`, l.ID(), strArg(l.Name()), strArg(l.Address()), strArg(l.CityID()), encodeCoordinates(l))
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errNotFound
		}
		return nil
	})
	if err != nil {
		return nil, repository.NewRepositoryError(companyLocationEntity, "update", err)
	}
	return r.mustFind(ctx, l.ID(), "update")
}

func (r *CompanyLocationRepository) Find(ctx context.Context, f repository.CompanyLocationFilter) (*entity.CompanyLocation, error) {
	w := companyLocationWhere(f)
	row := r.pool.QueryRow(ctx, selectCompanyLocation+w.clause()+" ORDER BY l.id DESC LIMIT 1", w.args...)
	l, err := scanCompanyLocation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, repository.NewRepositoryError(companyLocationEntity, "find", err)
	}
	return l, nil
}

func (r *CompanyLocationRepository) FindMany(ctx context.Context, f repository.CompanyLocationFilter) ([]*entity.CompanyLocation, error) {
	w := companyLocationWhere(f)
	rows, err := r.pool.Query(ctx, selectCompanyLocation+w.clause()+" ORDER BY l.id DESC"+limitOffset(f.Page, f.Size), w.args...)
	if err != nil {
		return nil, repository.NewRepositoryError(companyLocationEntity, "findMany", err)
	}
	defer rows.Close()

	out := make([]*entity.CompanyLocation, 0)
	for rows.Next() {
		l, err := scanCompanyLocation(rows)
		if err != nil {
			return nil, repository.NewRepositoryError(companyLocationEntity, "findMany", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.NewRepositoryError(companyLocationEntity, "findMany", err)
	}
	return out, nil
}

func (r *CompanyLocationRepository) Count(ctx context.Context, f repository.CompanyLocationFilter) (int, error) {
	w := companyLocationWhere(f)
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM company_locations l`+w.clause(), w.args...).Scan(&n)
	if err != nil {
		return 0, repository.NewRepositoryError(companyLocationEntity, "count", err)
	}
	return n, nil
}

func (r *CompanyLocationRepository) mustFind(ctx context.Context, id, op string) (*entity.CompanyLocation, error) {
	found, err := r.Find(ctx, repository.CompanyLocationFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, repository.NewRepositoryError(companyLocationEntity, op, errGoneAfterWrite)
	}
	return found, nil
}

func scanCompanyLocation(row pgx.Row) (*entity.CompanyLocation, error) {
	var r companyLocationRow
	if err := row.Scan(&r.ID, &r.CompanyID, &r.Name, &r.IsRemote, &r.Address, &r.CityID,
		&r.Geometry, &r.Deleted, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return mapCompanyLocation(r), nil
}

var _ repository.CompanyLocationRepository = (*CompanyLocationRepository)(nil)
