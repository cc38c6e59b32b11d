// Package simpletxmanager is the metrics-free counterpart of txmanager,
// used when the service runs with metrics collection disabled.
package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/calendrio/calendar-backend/pkg/dbmetrics"
	"github.com/calendrio/calendar-backend/pkg/txmanager"
)

const maxAttempts = 3

// TransactionManager opens serializable transactions on a plain *sql.DB.
type TransactionManager struct {
	db *sql.DB
}

func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable executes fn inside a SERIALIZABLE transaction, retrying on
// PostgreSQL serialization failures. See txmanager.DoSerializable.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err != nil {
			return fmt.Errorf("simpletxmanager: begin transaction: %w", err)
		}

		txCtx := dbmetrics.ContextWithTx(ctx, tx)
		if err := fn(txCtx); err != nil {
			_ = tx.Rollback()
			if txmanager.IsSerializationFailure(err) {
				lastErr = err
				continue
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			if txmanager.IsSerializationFailure(err) {
				lastErr = err
				continue
			}
			return fmt.Errorf("simpletxmanager: commit transaction: %w", err)
		}

		return nil
	}

	return fmt.Errorf("simpletxmanager: serialization failure after %d attempts: %w", maxAttempts, lastErr)
}
