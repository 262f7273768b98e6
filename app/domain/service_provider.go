package domain

import (
	"github.com/google/wire"
	"gramgate.io/profile-api-gateway/app/domain/gateway"
	"gramgate.io/profile-api-gateway/app/domain/healthcheck"
	"gramgate.io/profile-api-gateway/app/domain/lock"
	"gramgate.io/profile-api-gateway/app/domain/ratelimit"
)

var ServiceProvider = wire.NewSet(
	lock.NewLocker,
	ratelimit.NewLimiter,
	gateway.NewGateway,
	healthcheck.NewService,
)
