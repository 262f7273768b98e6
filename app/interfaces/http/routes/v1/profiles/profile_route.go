package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gramgate.io/profile-api-gateway/app/domain/gateway"
	"gramgate.io/profile-api-gateway/app/domain/profile"
	"gramgate.io/profile-api-gateway/app/interfaces/http/requests"
	"gramgate.io/profile-api-gateway/app/interfaces/http/responses"
)

// ProfileRoute exposes the public profile lookup.
type ProfileRoute struct {
	gateway *gateway.Gateway
}

func NewProfileRoute(gw *gateway.Gateway) *ProfileRoute {
	return &ProfileRoute{
		gateway: gw,
	}
}

func (route *ProfileRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/profiles", route.GetProfile)
}

// GetProfile resolves ?username= through the cache-aside flow. The
// identifier may be a bare handle, "@handle" or a full profile URL.
func (route *ProfileRoute) GetProfile(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	rawIdentifier := reqCtx.Query("username")
	if rawIdentifier == "" {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "9c1de2c4-71a5-4a76-9d2a-0f6f0d7a6d41",
			Error: "username is required",
		})
		return
	}

	resolved, err := route.gateway.Lookup(ctx, rawIdentifier, requests.ClientIdentifier(reqCtx))
	if err != nil {
		status, code := lookupStatus(err)
		reqCtx.JSON(status, responses.ErrorResponse{
			Code:  code,
			Error: err.Error(),
		})
		return
	}

	reqCtx.JSON(http.StatusOK, resolved)
}

func lookupStatus(err error) (int, string) {
	switch {
	case errors.Is(err, gateway.ErrInvalidIdentifier):
		return http.StatusBadRequest, "9c1de2c4-71a5-4a76-9d2a-0f6f0d7a6d41"
	case errors.Is(err, gateway.ErrBusy):
		return http.StatusTooManyRequests, "3d21a6a5-4f5e-4e0d-9a93-6f5a6d2e8b10"
	case errors.Is(err, gateway.ErrRateLimited):
		return http.StatusTooManyRequests, "e0a6d3df-5b1e-4f86-8f3d-1a2b3c4d5e6f"
	case errors.Is(err, profile.ErrNotFound):
		return http.StatusNotFound, "7b8f6f1a-24cb-4b4d-9c1f-58d9a6f2e301"
	case errors.Is(err, profile.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout, "f4d9b7ce-9a45-49cf-b2d6-3c1e5a7f8d92"
	default:
		return http.StatusInternalServerError, "1f2e3d4c-5b6a-4978-8c9d-0e1f2a3b4c5d"
	}
}
