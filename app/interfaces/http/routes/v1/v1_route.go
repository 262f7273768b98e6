package v1

import (
	"github.com/gin-gonic/gin"
	"gramgate.io/profile-api-gateway/app/interfaces/http/routes/v1/admin"
	"gramgate.io/profile-api-gateway/app/interfaces/http/routes/v1/profiles"
)

type V1Route struct {
	profileRoute *profiles.ProfileRoute
	cacheRoute   *admin.CacheRoute
}

func NewV1Route(
	profileRoute *profiles.ProfileRoute,
	cacheRoute *admin.CacheRoute,
) *V1Route {
	return &V1Route{
		profileRoute,
		cacheRoute,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Route.profileRoute.RegisterRouter(v1Router)
	v1Route.cacheRoute.RegisterRouter(v1Router)
}
