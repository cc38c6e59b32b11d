// Package txmanager runs functions inside serializable database
// transactions over the instrumented dbmetrics pool.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/calendrio/calendar-backend/pkg/dbmetrics"
)

// maxAttempts bounds retries when PostgreSQL aborts a transaction with a
// serialization failure (SQLSTATE 40001).
const maxAttempts = 3

// TransactionManager opens serializable transactions on an instrumented DB.
type TransactionManager struct {
	db *dbmetrics.DB
}

func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable executes fn inside a SERIALIZABLE transaction. The open
// transaction travels to repositories through the context. A serialization
// failure rolls the transaction back and retries fn from scratch, up to
// maxAttempts times; any other error aborts with a rollback.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err != nil {
			return fmt.Errorf("txmanager: begin transaction: %w", err)
		}

		txCtx := dbmetrics.ContextWithTx(ctx, tx)
		if err := fn(txCtx); err != nil {
			_ = tx.Rollback()
			if IsSerializationFailure(err) {
				lastErr = err
				continue
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			if IsSerializationFailure(err) {
				lastErr = err
				continue
			}
			return fmt.Errorf("txmanager: commit transaction: %w", err)
		}

		return nil
	}

	return fmt.Errorf("txmanager: serialization failure after %d attempts: %w", maxAttempts, lastErr)
}

// IsSerializationFailure reports whether err is a PostgreSQL serialization
// failure (SQLSTATE 40001), the signal that a concurrent transaction won the
// race and this one should be retried.
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "40001"
}
