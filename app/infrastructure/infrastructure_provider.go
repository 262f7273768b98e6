package infrastructure

import (
	"github.com/google/wire"
	"gramgate.io/profile-api-gateway/app/domain/profile"
	"gramgate.io/profile-api-gateway/app/infrastructure/cache"
	"gramgate.io/profile-api-gateway/app/infrastructure/upstream"
)

var InfrastructureProvider = wire.NewSet(
	cache.NewStore,
	upstream.NewInstagramClient,
	wire.Bind(new(profile.Resolver), new(*upstream.InstagramClient)),
)
