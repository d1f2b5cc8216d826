// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"labourhub/internal/app/system/tasks"
	"labourhub/internal/app/system/timeouts"
)

// jobRunner drives background jobs for the life of the process; Shutdown
// stops it.
var jobRunner *tasks.Runner

// Startup runs one-time application initialization after the gateway is
// connected, but before the HTTP handler is built. Handler timeouts are
// capped at the configured backend timeout so a handler never waits
// longer than its underlying HTTP call would.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.BackendTimeout > 0 && appCfg.BackendTimeout < timeouts.DefaultLong {
		timeouts.Configure(timeouts.Config{Long: appCfg.BackendTimeout})
	}

	jobRunner = tasks.NewRunner(logger)
	jobRunner.Start(tasks.BackendHealthJob(deps.API, logger, 30*time.Second))
	return nil
}
