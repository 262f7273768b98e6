package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gramgate.io/profile-api-gateway/app/domain/gateway"
	"gramgate.io/profile-api-gateway/app/domain/profile"
	"gramgate.io/profile-api-gateway/app/interfaces/http/middleware"
	"gramgate.io/profile-api-gateway/app/interfaces/http/responses"
	"gramgate.io/profile-api-gateway/app/utils/logger"
)

// CacheRoute exposes administrative cache operations. These are trusted,
// low-volume controls: they bypass the lock and the rate limiter entirely.
type CacheRoute struct {
	gateway *gateway.Gateway
}

// NewCacheRoute constructs a CacheRoute instance.
func NewCacheRoute(gw *gateway.Gateway) *CacheRoute {
	return &CacheRoute{
		gateway: gw,
	}
}

// RegisterRouter wires the administrative cache endpoints.
func (route *CacheRoute) RegisterRouter(router gin.IRouter) {
	adminRouter := router.Group("/admin", middleware.AdminAuthMiddleware())

	adminRouter.POST("/cache/invalidate", route.InvalidateCache)
	adminRouter.POST("/cache/refresh", route.RefreshProfile)
}

type CacheInvalidateRequest struct {
	Username string `json:"username"`
	All      bool   `json:"all"`
}

// CacheInvalidateResponse represents the result of a cache invalidation
// request.
type CacheInvalidateResponse struct {
	Object  string `json:"object"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (route *CacheRoute) InvalidateCache(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req CacheInvalidateRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "c2b7d1e0-6a3f-45d8-9e12-84a5b6c7d8e9",
			Error: "invalid request body",
		})
		return
	}

	var err error
	message := "profile invalidated"
	switch {
	case req.All:
		// flushes rate-limit counters too; acceptable for an
		// operational control
		err = route.gateway.InvalidateAll(ctx)
		message = "cache invalidated"
	case req.Username != "":
		err = route.gateway.Invalidate(ctx, req.Username)
	default:
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "c2b7d1e0-6a3f-45d8-9e12-84a5b6c7d8e9",
			Error: "username or all is required",
		})
		return
	}

	if err != nil {
		if errors.Is(err, gateway.ErrInvalidIdentifier) {
			reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
				Code:  "9c1de2c4-71a5-4a76-9d2a-0f6f0d7a6d41",
				Error: err.Error(),
			})
			return
		}
		logger.GetLogger().Errorf("admin cache: failed to invalidate: %v", err)
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "b0c4f1c8-2a3b-4ad4-8b1d-7a2124d7c7b1",
			Error: "failed to invalidate cache",
		})
		return
	}

	reqCtx.JSON(http.StatusOK, CacheInvalidateResponse{
		Object:  "cache.invalidation",
		Status:  "ok",
		Message: message,
	})
}

type CacheRefreshRequest struct {
	Username string `json:"username"`
}

func (route *CacheRoute) RefreshProfile(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req CacheRefreshRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil || req.Username == "" {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "c2b7d1e0-6a3f-45d8-9e12-84a5b6c7d8e9",
			Error: "username is required",
		})
		return
	}

	resolved, err := route.gateway.ForceRefresh(ctx, req.Username)
	if err != nil {
		status, code := refreshStatus(err)
		logger.GetLogger().Errorf("admin cache: refresh of %q failed: %v", req.Username, err)
		reqCtx.JSON(status, responses.ErrorResponse{
			Code:  code,
			Error: err.Error(),
		})
		return
	}

	reqCtx.JSON(http.StatusOK, resolved)
}

func refreshStatus(err error) (int, string) {
	switch {
	case errors.Is(err, gateway.ErrInvalidIdentifier):
		return http.StatusBadRequest, "9c1de2c4-71a5-4a76-9d2a-0f6f0d7a6d41"
	case errors.Is(err, profile.ErrNotFound):
		return http.StatusNotFound, "7b8f6f1a-24cb-4b4d-9c1f-58d9a6f2e301"
	case errors.Is(err, profile.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout, "f4d9b7ce-9a45-49cf-b2d6-3c1e5a7f8d92"
	default:
		return http.StatusInternalServerError, "1f2e3d4c-5b6a-4978-8c9d-0e1f2a3b4c5d"
	}
}
