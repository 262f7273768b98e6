package profiles_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gramgate.io/profile-api-gateway/app/domain/gateway"
	"gramgate.io/profile-api-gateway/app/domain/lock"
	"gramgate.io/profile-api-gateway/app/domain/profile"
	"gramgate.io/profile-api-gateway/app/domain/ratelimit"
	"gramgate.io/profile-api-gateway/app/infrastructure/cache"
	"gramgate.io/profile-api-gateway/app/interfaces/http/routes/v1/profiles"
)

type stubResolver struct {
	calls int32
	err   error
}

func (r *stubResolver) Resolve(ctx context.Context, username string) (*profile.Profile, error) {
	atomic.AddInt32(&r.calls, 1)
	if r.err != nil {
		return nil, r.err
	}
	return &profile.Profile{Username: username, FollowersCount: 42}, nil
}

func newTestRouter(resolver profile.Resolver, cfg gateway.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := cache.NewMemoryStore()
	gw := gateway.NewGatewayWithConfig(store, lock.NewLocker(store), ratelimit.NewLimiter(store), resolver, cfg)
	engine := gin.New()
	profiles.NewProfileRoute(gw).RegisterRouter(engine)
	return engine
}

func TestGetProfileSuccess(t *testing.T) {
	router := newTestRouter(&stubResolver{}, gateway.DefaultConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profiles?username=%40foo", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resolved profile.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resolved))
	assert.Equal(t, "foo", resolved.Username)
	assert.Equal(t, int64(42), resolved.FollowersCount)
}

func TestGetProfileMissingUsername(t *testing.T) {
	router := newTestRouter(&stubResolver{}, gateway.DefaultConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestGetProfileNotFound(t *testing.T) {
	router := newTestRouter(&stubResolver{err: profile.ErrNotFound}, gateway.DefaultConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profiles?username=ghost", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProfileUpstreamTimeout(t *testing.T) {
	router := newTestRouter(&stubResolver{err: profile.ErrUpstreamTimeout}, gateway.DefaultConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profiles?username=slowpoke", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestGetProfileRateLimited(t *testing.T) {
	cfg := gateway.DefaultConfig()
	cfg.RateLimit = 1
	cfg.RateWindow = time.Minute
	router := newTestRouter(&stubResolver{}, cfg)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profiles?username=usera", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/profiles?username=userb", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4")
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
