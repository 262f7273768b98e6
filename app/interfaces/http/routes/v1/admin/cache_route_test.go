package admin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gramgate.io/profile-api-gateway/app/domain/gateway"
	"gramgate.io/profile-api-gateway/app/domain/lock"
	"gramgate.io/profile-api-gateway/app/domain/profile"
	"gramgate.io/profile-api-gateway/app/domain/ratelimit"
	"gramgate.io/profile-api-gateway/app/infrastructure/cache"
	"gramgate.io/profile-api-gateway/app/interfaces/http/routes/v1/admin"
	"gramgate.io/profile-api-gateway/config/environment_variables"
)

const testAdminKey = "test-admin-key"

type stubResolver struct {
	calls int32
}

func (r *stubResolver) Resolve(ctx context.Context, username string) (*profile.Profile, error) {
	atomic.AddInt32(&r.calls, 1)
	return &profile.Profile{Username: username, FollowersCount: 42}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *cache.MemoryStore, *stubResolver) {
	t.Helper()
	environment_variables.EnvironmentVariables.ADMIN_API_KEY = testAdminKey
	t.Cleanup(func() {
		environment_variables.EnvironmentVariables.ADMIN_API_KEY = ""
	})

	gin.SetMode(gin.TestMode)
	store := cache.NewMemoryStore()
	resolver := &stubResolver{}
	gw := gateway.NewGateway(store, lock.NewLocker(store), ratelimit.NewLimiter(store), resolver)
	engine := gin.New()
	admin.NewCacheRoute(gw).RegisterRouter(engine)
	return engine, store, resolver
}

func doAdminRequest(router *gin.Engine, path, body, token string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(rec, req)
	return rec
}

func TestAdminEndpointsRequireBearerKey(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doAdminRequest(router, "/admin/cache/invalidate", `{"all":true}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doAdminRequest(router, "/admin/cache/invalidate", `{"all":true}`, "wrong-key")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInvalidateSingleProfile(t *testing.T) {
	router, store, _ := newTestRouter(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, cache.ProfileKey("foo"), `{"username":"foo"}`, cache.ProfileTTL))

	rec := doAdminRequest(router, "/admin/cache/invalidate", `{"username":"@foo"}`, testAdminKey)
	require.Equal(t, http.StatusOK, rec.Code)

	_, found, err := store.Get(ctx, cache.ProfileKey("foo"))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidateAll(t *testing.T) {
	router, store, _ := newTestRouter(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, cache.ProfileKey("foo"), `{"username":"foo"}`, cache.ProfileTTL))
	require.NoError(t, store.Set(ctx, cache.ProfileKey("bar"), `{"username":"bar"}`, cache.ProfileTTL))

	rec := doAdminRequest(router, "/admin/cache/invalidate", `{"all":true}`, testAdminKey)
	require.Equal(t, http.StatusOK, rec.Code)

	_, found, err := store.Get(ctx, cache.ProfileKey("bar"))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidateRejectsEmptyBody(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doAdminRequest(router, "/admin/cache/invalidate", `{}`, testAdminKey)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshOverwritesCache(t *testing.T) {
	router, store, resolver := newTestRouter(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, cache.ProfileKey("foo"), `{"username":"foo","followers_count":1}`, cache.ProfileTTL))

	rec := doAdminRequest(router, "/admin/cache/refresh", `{"username":"foo"}`, testAdminKey)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&resolver.calls), "refresh must bypass the cache")

	raw, found, err := store.Get(ctx, cache.ProfileKey("foo"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, raw, `"followers_count":42`)
}

func TestRefreshRequiresUsername(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doAdminRequest(router, "/admin/cache/refresh", `{}`, testAdminKey)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
