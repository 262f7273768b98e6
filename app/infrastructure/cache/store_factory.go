package cache

import (
	"gramgate.io/profile-api-gateway/app/utils/logger"
	"gramgate.io/profile-api-gateway/config/environment_variables"
)

// NewStore creates the store the process runs on. Without a configured
// Redis URL the gateway still serves traffic: the noop store makes every
// component take its fail-open path, so each lookup goes to the upstream.
func NewStore() Store {
	if environment_variables.EnvironmentVariables.REDIS_URL == "" {
		logger.GetLogger().Warn("REDIS_URL not set, running without a shared store")
		return NewNoopStore()
	}
	return NewRedisStore()
}
