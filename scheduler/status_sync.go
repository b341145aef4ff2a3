package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const statusSyncJobName = "tournament_status_sync"

// StatusSyncer advances tournament statuses that are due at now.
type StatusSyncer interface {
	SyncStatuses(ctx context.Context, now time.Time) (int, error)
}

// RegisterStatusSyncJob moves started tournaments to ongoing and finished ones
// to completed every interval. Each run is bounded by the interval.
func RegisterStatusSyncJob(s *Service, syncer StatusSyncer, interval time.Duration) error {
	_, err := s.AddIntervalJob(statusSyncJobName, interval, func() {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		defer cancel()

		changed, err := syncer.SyncStatuses(ctx, time.Now().UTC())
		if err != nil {
			s.logger.Error("tournament status sync failed", slog.Any("error", err))
			return
		}
		if changed > 0 {
			s.logger.Info("tournament statuses advanced", slog.Int("count", changed))
		}
	})
	if err != nil {
		return fmt.Errorf("add tournament status sync job: %w", err)
	}
	return nil
}
