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

const blacklistTokenEntity = "BlacklistToken"

const selectBlacklistToken = `
	SELECT t.id, t.token, t.expires_at, t.created_at
	FROM blacklist_tokens t`

// BlacklistTokenRepository persists revoked tokens. Rows are create-only;
// there is no update path.
type BlacklistTokenRepository struct {
	pool  *pgxpool.Pool
	newID func() string
}

func NewBlacklistTokenRepository(pool *pgxpool.Pool) *BlacklistTokenRepository {
	return &BlacklistTokenRepository{pool: pool, newID: uuid.NewString}
}

func blacklistTokenWhere(f repository.BlacklistTokenFilter) *where {
	w := &where{}
	if f.ID != nil {
		w.eq("t.id", *f.ID)
	}
	if f.Token != nil {
		w.eq("t.token", *f.Token)
	}
	return w
}

func (r *BlacklistTokenRepository) Create(ctx context.Context, draft entity.BlacklistTokenDraft) (*entity.BlacklistToken, error) {
	id := r.newID()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO blacklist_tokens (id, token, expires_at)
		VALUES ($1, $2, $3)
	`, id, draft.Token, draft.ExpiresAt)
	if err != nil {
		return nil, repository.NewRepositoryError(blacklistTokenEntity, "create", err)
	}
	found, err := r.Find(ctx, repository.BlacklistTokenFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, repository.NewRepositoryError(blacklistTokenEntity, "create", errGoneAfterWrite)
	}
	return found, nil
}

func (r *BlacklistTokenRepository) Find(ctx context.Context, f repository.BlacklistTokenFilter) (*entity.BlacklistToken, error) {
	w := blacklistTokenWhere(f)
	var row blacklistTokenRow
	err := r.pool.QueryRow(ctx, selectBlacklistToken+w.clause()+" ORDER BY t.id DESC LIMIT 1", w.args...).
		Scan(&row.ID, &row.Token, &row.ExpiresAt, &row.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, repository.NewRepositoryError(blacklistTokenEntity, "find", err)
	}
	return mapBlacklistToken(row), nil
}

var _ repository.BlacklistTokenRepository = (*BlacklistTokenRepository)(nil)
