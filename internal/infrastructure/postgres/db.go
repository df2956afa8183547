// Package postgres implements the repository contracts on top of a pgx
// connection pool. Multi-table writes run inside a single transaction;
// every storage failure is wrapped into repository.RepositoryError before
// it leaves this package.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errNotFound       = errors.New("not found")
	errGoneAfterWrite = errors.New("row not found after write")
)

// inTx runs fn inside a transaction. Rollback on error, commit otherwise;
// the deferred rollback is a no-op after a successful commit.
func inTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// where accumulates AND-combined conditions with positional parameters.
type where struct {
	conds []string
	args  []any
}

func (w *where) raw(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *where) eq(col string, v any) {
	w.args = append(w.args, v)
	w.conds = append(w.conds, fmt.Sprintf("%s = $%d", col, len(w.args)))
}

// ilike adds a case-insensitive substring match.
func (w *where) ilike(col string, v string) {
	w.args = append(w.args, "%"+v+"%")
	w.conds = append(w.conds, fmt.Sprintf("%s ILIKE $%d", col, len(w.args)))
}

func (w *where) in(col string, vals []string) {
	w.args = append(w.args, vals)
	w.conds = append(w.conds, fmt.Sprintf("%s = ANY($%d)", col, len(w.args)))
}

func (w *where) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// limitOffset renders pagination. Size <= 0 means no limit; page numbering
// starts at 1.
func limitOffset(page, size int) string {
	if size <= 0 {
		return ""
	}
	if page < 1 {
		page = 1
	}
	return fmt.Sprintf(" LIMIT %d OFFSET %d", size, (page-1)*size)
}

// strArg converts a presence-style getter result into a nullable SQL argument.
func strArg(v string, ok bool) *string {
	if !ok {
		return nil
	}
	return &v
}
