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

const candidateEntity = "Candidate"

const selectCandidate = `
	SELECT u.id, u.email, u.password_hash, u.first_name, u.last_name,
	       u.is_deleted, u.created_at, u.updated_at,
	       c.city_id, c.headline, c.linkedin_url, c.resume_url
	FROM users u
	JOIN candidates c ON c.user_id = u.id`

// CandidateRepository persists candidates across the users and candidates
// tables. Writes touch both tables inside one transaction; the candidates
// row never exists without its users root.
type CandidateRepository struct {
	pool  *pgxpool.Pool
	newID func() string
}

func NewCandidateRepository(pool *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{pool: pool, newID: uuid.NewString}
}

func candidateWhere(f repository.CandidateFilter) *where {
	w := &where{}
	w.raw("NOT u.is_deleted")
	if f.ID != nil {
		w.eq("u.id", *f.ID)
	}
	if f.Email != nil {
		w.eq("u.email", *f.Email)
	}
	if f.CityID != nil {
		w.eq("c.city_id", *f.CityID)
	}
	if f.Name != nil {
		w.ilike("u.first_name || ' ' || u.last_name", *f.Name)
	}
	if len(f.IDs) > 0 {
		w.in("u.id", f.IDs)
	}
	return w
}

func (r *CandidateRepository) Create(ctx context.Context, draft entity.CandidateDraft) (*entity.Candidate, error) {
	id := r.newID()
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO users (id, email, password_hash, first_name, last_name)
			VALUES ($1, $2, $3, $4, $5)
		`, id, draft.Email, draft.PasswordHash, draft.FirstName, draft.LastName); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO candidates (user_id, city_id, headline, linkedin_url, resume_url)
			VALUES ($1, $2, $3, $4, $5)
		`, id, draft.CityID, draft.Headline, draft.LinkedinURL, draft.ResumeURL); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, repository.NewRepositoryError(candidateEntity, "create", err)
	}
	return r.mustFind(ctx, id, "create")
}

// Update writes the full current snapshot of mutable fields across both
// tables, then re-reads the canonical row.
func (r *CandidateRepository) Update(ctx context.Context, c *entity.Candidate) (*entity.Candidate, error) {
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE users
			SET email = $2, first_name = $3, last_name = $4, updated_at = now()
			WHERE id = $1 AND NOT is_deleted
		`, c.ID(), c.Email(), c.FirstName(), c.LastName())
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errNotFound
		}
		if _, err := tx.Exec(ctx, `
			UPDATE candidates
			SET city_id = $2, headline = $3, linkedin_url = $4, resume_url = $5
			WHERE user_id = $1
		`, c.ID(), strArg(c.CityID()), strArg(c.Headline()), strArg(c.LinkedinURL()), strArg(c.ResumeURL())); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, repository.NewRepositoryError(candidateEntity, "update", err)
	}
	return r.mustFind(ctx, c.ID(), "update")
}

func (r *CandidateRepository) Find(ctx context.Context, f repository.CandidateFilter) (*entity.Candidate, error) {
	w := candidateWhere(f)
	row := r.pool.QueryRow(ctx, selectCandidate+w.clause()+" ORDER BY u.id DESC LIMIT 1", w.args...)
	c, err := scanCandidate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, repository.NewRepositoryError(candidateEntity, "find", err)
	}
	return c, nil
}

func (r *CandidateRepository) FindMany(ctx context.Context, f repository.CandidateFilter) ([]*entity.Candidate, error) {
	w := candidateWhere(f)
	rows, err := r.pool.Query(ctx, selectCandidate+w.clause()+" ORDER BY u.id DESC"+limitOffset(f.Page, f.Size), w.args...)
	if err != nil {
		return nil, repository.NewRepositoryError(candidateEntity, "findMany", err)
	}
	defer rows.Close()

	out := make([]*entity.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, repository.NewRepositoryError(candidateEntity, "findMany", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.NewRepositoryError(candidateEntity, "findMany", err)
	}
	return out, nil
}

func (r *CandidateRepository) Count(ctx context.Context, f repository.CandidateFilter) (int, error) {
	w := candidateWhere(f)
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM users u
		JOIN candidates c ON c.user_id = u.id`+w.clause(), w.args...).Scan(&n)
	if err != nil {
		return 0, repository.NewRepositoryError(candidateEntity, "count", err)
	}
	return n, nil
}

// mustFind is the read-after-write step: the returned entity is always the
// canonical stored row, never the caller's input.
func (r *CandidateRepository) mustFind(ctx context.Context, id, op string) (*entity.Candidate, error) {
	found, err := r.Find(ctx, repository.CandidateFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, repository.NewRepositoryError(candidateEntity, op, errGoneAfterWrite)
	}
	return found, nil
}

func scanCandidate(row pgx.Row) (*entity.Candidate, error) {
	var r candidateRow
	if err := row.Scan(&r.ID, &r.Email, &r.PasswordHash, &r.FirstName, &r.LastName,
		&r.Deleted, &r.CreatedAt, &r.UpdatedAt,
		&r.CityID, &r.Headline, &r.LinkedinURL, &r.ResumeURL); err != nil {
		return nil, err
	}
	return mapCandidate(r), nil
}

var _ repository.CandidateRepository = (*CandidateRepository)(nil)
