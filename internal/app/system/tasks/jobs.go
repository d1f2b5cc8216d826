// internal/app/system/tasks/jobs.go
package tasks

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"labourhub/internal/app/gateway"
)

// BackendHealthJob creates a job that pings the labour-management backend
// and logs reachability transitions. A backend outage otherwise only shows
// up as scattered request failures; this gives operators a single signal.
func BackendHealthJob(api *gateway.Client, logger *zap.Logger, interval time.Duration) Job {
	var down atomic.Bool
	return Job{
		Name:     "backend-health",
		Interval: interval,
		Run: func(ctx context.Context) error {
			err := api.Ping(ctx)
			if err != nil {
				if !down.Swap(true) {
					logger.Warn("backend became unreachable", zap.Error(err))
				}
				return nil // transition already logged, don't double-report
			}
			if down.Swap(false) {
				logger.Info("backend reachable again")
			}
			return nil
		},
	}
}
