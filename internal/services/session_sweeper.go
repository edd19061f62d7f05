package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tasknest/tasknest/pkg/logger"
)

// StartSessionSweeper schedules an hourly purge of sessions that are both
// revoked and expired. The sweep shares no state with request handling
// beyond the session store itself.
func StartSessionSweeper(sessions SessionStore) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		purged, err := sessions.PurgeExpiredRevoked(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("session purge failed")
			return
		}
		if purged > 0 {
			logger.Info().Int64("purged", purged).Msg("purged expired sessions")
		}
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to schedule session sweeper")
		return c
	}

	c.Start()
	return c
}
