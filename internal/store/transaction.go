package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/apiary-api/internal/platform/logger"
	"gorm.io/gorm"
)

// TxFn runs inside a transaction. Stores used by the function must be bound
// to tx with WithTx for their writes to join it.
type TxFn func(ctx context.Context, tx *gorm.DB) error

// RunInTransaction begins a transaction on db, runs fn and commits when fn
// returns nil. An error from fn rolls back and is returned as is. A panic in
// fn rolls back and is re-raised.
func RunInTransaction(ctx context.Context, db *gorm.DB, fn TxFn) error {
	log := logger.FromContext(ctx).With(slog.String("component", "transaction"))

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		log.Error("begin failed", slog.String("error", tx.Error.Error()))
		return fmt.Errorf("%w: begin: %v", ErrTransactionFailed, tx.Error)
	}

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if rbErr := tx.Rollback().Error; rbErr != nil {
			log.Error("rollback after panic failed",
				slog.String("error", rbErr.Error()),
				slog.Any("panic", p))
		} else {
			log.Error("rolled back after panic", slog.Any("panic", p))
		}
		// ALLOW-PANIC: Propagating caught panic from transaction
		panic(p)
	}()

	if err := fn(ctx, tx); err != nil {
		return rollback(tx, log, err)
	}

	if err := tx.Commit().Error; err != nil {
		log.Error("commit failed", slog.String("error", err.Error()))
		return fmt.Errorf("%w: commit: %v", ErrTransactionFailed, err)
	}
	log.Debug("committed")
	return nil
}

// rollback aborts tx after cause. A failed rollback is reported alongside
// cause, which stays matchable with errors.Is.
func rollback(tx *gorm.DB, log *slog.Logger, cause error) error {
	if err := tx.Rollback().Error; err != nil {
		log.Error("rollback failed",
			slog.String("rollback_error", err.Error()),
			slog.String("cause", cause.Error()))
		return fmt.Errorf("rollback failed: %v (cause: %w)", err, cause)
	}
	log.Debug("rolled back", slog.String("cause", cause.Error()))
	return cause
}
