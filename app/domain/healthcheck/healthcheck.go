package healthcheck

import (
	"context"

	"github.com/mileusna/crontab"
	"gramgate.io/profile-api-gateway/app/infrastructure/cache"
	"gramgate.io/profile-api-gateway/app/utils/logger"
	"gramgate.io/profile-api-gateway/config/environment_variables"
)

// HealthcheckCrontabService periodically probes the shared store so a dead
// Redis shows up in the logs before the fail-open paths mask it.
type HealthcheckCrontabService struct {
	Store cache.Store
}

func NewService(store cache.Store) *HealthcheckCrontabService {
	return &HealthcheckCrontabService{
		Store: store,
	}
}

func (hs *HealthcheckCrontabService) Start(ctx context.Context, ctab *crontab.Crontab) {
	hs.CheckStore(ctx)
	ctab.AddJob("*/2 * * * *", func() {
		hs.CheckStore(ctx)
		environment_variables.EnvironmentVariables.LoadFromEnv()
	})
}

func (hs *HealthcheckCrontabService) CheckStore(ctx context.Context) {
	if err := hs.Store.HealthCheck(ctx); err != nil {
		logger.GetLogger().Warnf("store healthcheck failed: %v", err)
	}
}
