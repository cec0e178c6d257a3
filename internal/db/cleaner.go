package db

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// DefaultSessionRetention is how long an untouched session row is kept.
const DefaultSessionRetention = 30 * 24 * time.Hour

// StartStaleSessionCleaner removes client_session rows that have not been
// written within retention, checking every interval until ctx is done.
func StartStaleSessionCleaner(
	ctx context.Context,
	db *sql.DB,
	dialect Dialect,
	interval time.Duration,
	retention time.Duration,
	log *zap.Logger,
) {
	query := `DELETE FROM client_session WHERE updated_at < $1`
	if dialect == SQLite {
		query = `DELETE FROM client_session WHERE updated_at < ?`
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cutoff := time.Now().Add(-retention).Unix()
				res, err := db.ExecContext(ctx, query, cutoff)
				if err != nil {
					log.Error("failed to clean stale session rows", zap.Error(err))
					continue
				}
				if rows, _ := res.RowsAffected(); rows > 0 {
					log.Info("cleaned stale session rows", zap.Int64("removed", rows))
				}
			}
		}
	}()
}
