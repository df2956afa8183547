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

const companyEntity = "Company"

const selectCompany = `
	SELECT co.id, co.name, co.website, co.description,
	       co.is_deleted, co.created_at, co.updated_at
	FROM companies co`

type CompanyRepository struct {
	pool  *pgxpool.Pool
	newID func() string
}

func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool, newID: uuid.NewString}
}

func companyWhere(f repository.CompanyFilter) *where {
	w := &where{}
	w.raw("NOT co.is_deleted")
	if f.ID != nil {
		w.eq("co.id", *f.ID)
	}
	if f.Name != nil {
		w.ilike("co.name", *f.Name)
	}
	if f.NameExact != nil {
		w.eq("co.name", *f.NameExact)
	}
	if len(f.IDs) > 0 {
		w.in("co.id", f.IDs)
	}
	return w
}

func (r *CompanyRepository) Create(ctx context.Context, draft entity.CompanyDraft) (*entity.Company, error) {
	id := r.newID()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO companies (id, name, website, description)
		VALUES ($1, $2, $3, $4)
	`, id, draft.Name, draft.Website, draft.Description)
	if err != nil {
		return nil, repository.NewRepositoryError(companyEntity, "create", err)
	}
	return r.mustFind(ctx, id, "create")
}

func (r *CompanyRepository) Update(ctx context.Context, c *entity.Company) (*entity.Company, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE companies
		SET name = $2, website = $3, description = $4, updated_at = now()
		WHERE id = $1 AND NOT is_deleted
	`, c.ID(), c.Name(), strArg(c.Website()), strArg(c.Description()))
	if err != nil {
		return nil, repository.NewRepositoryError(companyEntity, "update", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, repository.NewRepositoryError(companyEntity, "update", errNotFound)
	}
	return r.mustFind(ctx, c.ID(), "update")
}

func (r *CompanyRepository) Find(ctx context.Context, f repository.CompanyFilter) (*entity.Company, error) {
	w := companyWhere(f)
	row := r.pool.QueryRow(ctx, selectCompany+w.clause()+" ORDER BY co.id DESC LIMIT 1", w.args...)
	c, err := scanCompany(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, repository.NewRepositoryError(companyEntity, "find", err)
	}
	return c, nil
}

func (r *CompanyRepository) FindMany(ctx context.Context, f repository.CompanyFilter) ([]*entity.Company, error) {
	w := companyWhere(f)
	rows, err := r.pool.Query(ctx, selectCompany+w.clause()+" ORDER BY co.id DESC"+limitOffset(f.Page, f.Size), w.args...)
	if err != nil {
		return nil, repository.NewRepositoryError(companyEntity, "findMany", err)
	}
	defer rows.Close()

	out := make([]*entity.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, repository.NewRepositoryError(companyEntity, "findMany", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.NewRepositoryError(companyEntity, "findMany", err)
	}
	return out, nil
}

func (r *CompanyRepository) Count(ctx context.Context, f repository.CompanyFilter) (int, error) {
	w := companyWhere(f)
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM companies co`+w.clause(), w.args...).Scan(&n)
	if err != nil {
		return 0, repository.NewRepositoryError(companyEntity, "count", err)
	}
	return n, nil
}

func (r *CompanyRepository) mustFind(ctx context.Context, id, op string) (*entity.Company, error) {
	found, err := r.Find(ctx, repository.CompanyFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, repository.NewRepositoryError(companyEntity, op, errGoneAfterWrite)
	}
	return found, nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var r companyRow
	if err := row.Scan(&r.ID, &r.Name, &r.Website, &r.Description,
		&r.Deleted, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return mapCompany(r), nil
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)
