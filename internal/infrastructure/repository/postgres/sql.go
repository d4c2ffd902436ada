// Package postgres implements the repositories on PostgreSQL via sqlx. Rows
// are soft-deleted: every query filters on deleted_at IS NULL and deletes
// stamp the column instead of removing the row. The one exception is the
// commit's ledger replace, which removes the old game_actions rows outright
// so their primary keys can be reused.
package postgres

import (
	"database/sql"
	"errors"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
