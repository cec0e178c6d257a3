package session

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// StartExpiryWatcher clears the session once the stored token's exp claim
// has passed. It checks every interval until ctx is done.
func StartExpiryWatcher(
	ctx context.Context,
	m *Manager,
	interval time.Duration,
	log *zap.Logger,
) {
	if log == nil {
		log = zap.NewNop()
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				expired, err := m.Expired(ctx, now)
				if errors.Is(err, ErrNoToken) {
					continue
				}
				if err != nil {
					log.Debug("cannot check token expiry", zap.Error(err))
					continue
				}
				if !expired {
					continue
				}
				if err := m.Clear(ctx); err != nil {
					log.Error("failed to clear expired session", zap.Error(err))
					continue
				}
				log.Info("session expired, cleared stored credentials")
			}
		}
	}()
}
