package routes

import (
	"github.com/google/wire"
	v1 "gramgate.io/profile-api-gateway/app/interfaces/http/routes/v1"
	"gramgate.io/profile-api-gateway/app/interfaces/http/routes/v1/admin"
	"gramgate.io/profile-api-gateway/app/interfaces/http/routes/v1/profiles"
)

var RouteProvider = wire.NewSet(
	profiles.NewProfileRoute,
	admin.NewCacheRoute,
	v1.NewV1Route,
)
