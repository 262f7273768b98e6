package requests

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetTokenFromBearer extracts the bearer token from the Authorization
// header.
func GetTokenFromBearer(reqCtx *gin.Context) (string, bool) {
	header := reqCtx.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

// ClientIdentifier picks the rate-limit identity for a request: the first
// entry of X-Forwarded-For, falling back to loopback. Trusts the reverse
// proxy in front to set the header honestly.
func ClientIdentifier(reqCtx *gin.Context) string {
	forwarded := reqCtx.GetHeader("X-Forwarded-For")
	if first := strings.TrimSpace(strings.Split(forwarded, ",")[0]); first != "" {
		return first
	}
	return "127.0.0.1"
}
