// internal/app/bootstrap/backend.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"labourhub/internal/app/gateway"
)

// DBDeps holds backend dependencies for the app. LabourHub owns no
// database; its one backing service is the labour-management REST API
// reached through the gateway client.
type DBDeps struct {
	API *gateway.Client
}

// ConnectDB builds the gateway client for the labour-management backend.
// A failed startup ping is logged but not fatal: the dashboard degrades
// per view while the backend is down instead of refusing to boot.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	api, err := gateway.New(appCfg.APIBaseURL, appCfg.MediaBaseURL, appCfg.BackendTimeout, logger)
	if err != nil {
		logger.Error("gateway init failed", zap.Error(err))
		return DBDeps{}, err
	}

	if err := api.Ping(ctx); err != nil {
		logger.Warn("labour-management backend unreachable at startup",
			zap.String("api_base_url", appCfg.APIBaseURL),
			zap.Error(err))
	} else {
		logger.Info("labour-management backend reachable",
			zap.String("api_base_url", appCfg.APIBaseURL))
	}

	return DBDeps{API: api}, nil
}

// EnsureSchema is a no-op: all persistence lives in the backend, which
// owns its own schema.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
