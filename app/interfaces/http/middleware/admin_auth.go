package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"gramgate.io/profile-api-gateway/app/interfaces/http/requests"
	"gramgate.io/profile-api-gateway/app/interfaces/http/responses"
	"gramgate.io/profile-api-gateway/config/environment_variables"
)

// AdminAuthMiddleware gates the operational endpoints behind the static
// admin bearer key. With no key configured the endpoints are disabled
// outright rather than left open.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		adminKey := environment_variables.EnvironmentVariables.ADMIN_API_KEY
		if adminKey == "" {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code:  "a1f2693e-5c07-4c83-9f27-32c297f1e1b9",
				Error: "admin endpoints are disabled",
			})
			return
		}

		token, ok := requests.GetTokenFromBearer(reqCtx)
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(adminKey)) != 1 {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code:  "4026757e-d5a4-4cf7-8914-2c96f011084f",
				Error: "unauthorized",
			})
			return
		}
		reqCtx.Next()
	}
}
