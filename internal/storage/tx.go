package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// WithTx runs fn inside a transaction and rolls back on any error,
// including a panic in fn. Multi-row writes such as dungeon inserts go
// through here so a partial write never reaches the hero's ledger.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	done := false
	defer func() {
		if !done {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	done = true
	return nil
}
