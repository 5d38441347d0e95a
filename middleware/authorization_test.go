package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cargo-logbook-backend/config"
	"cargo-logbook-backend/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop()
	m.Run()
}

type fakeTokenStore struct {
	data map[string]string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{data: make(map[string]string)}
}

func (f *fakeTokenStore) Get(ctx context.Context, key string) *redis.StringCmd {
	if v, ok := f.data[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeTokenStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeTokenStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func (f *fakeTokenStore) refreshKeys() []string {
	keys := make([]string, 0, len(f.data))
	for k := range f.data {
		keys = append(keys, k)
	}
	return keys
}

func newProtectedApp(t *testing.T, store *fakeTokenStore) (*fiber.App, token.Maker) {
	t.Helper()

	maker, err := token.NewPasetoMaker("12345678901234567890123456789012")
	require.NoError(t, err)

	appCtx := &AppContext{
		PasetoMaker: maker,
		Ctx:         context.Background(),
		RedisClient: store,
	}

	app := fiber.New()
	app.Use(ProtectedRoute(appCtx))
	app.Get("/protected", func(c *fiber.Ctx) error {
		payload := c.Locals("user").(*token.Payload)
		return c.SendString(payload.Email)
	})

	return app, maker
}

func withCookie(req *http.Request, name, value string) *http.Request {
	req.AddCookie(&http.Cookie{Name: name, Value: value})
	return req
}

func TestProtectedRouteValidAccessToken(t *testing.T) {
	store := newFakeTokenStore()
	app, maker := newProtectedApp(t, store)

	accessToken, err := maker.CreateToken(uuid.New(), "operador@example.com", time.Minute)
	require.NoError(t, err)

	req := withCookie(httptest.NewRequest(http.MethodGet, "/protected", nil), "access_token", accessToken)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, store.refreshKeys(), "a valid access token never touches the store")
}

func TestProtectedRouteWithoutTokens(t *testing.T) {
	app, _ := newProtectedApp(t, newFakeTokenStore())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRouteRotatesRefreshToken(t *testing.T) {
	store := newFakeTokenStore()
	app, maker := newProtectedApp(t, store)

	userID := uuid.New()
	expiredAccess, err := maker.CreateToken(userID, "operador@example.com", time.Millisecond)
	require.NoError(t, err)
	refreshToken, err := maker.CreateToken(userID, "operador@example.com", time.Hour)
	require.NoError(t, err)
	store.data["refresh_token:"+refreshToken] = userID.String()

	time.Sleep(5 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	withCookie(req, "access_token", expiredAccess)
	withCookie(req, "refresh_token", refreshToken)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "rotation keeps the request going")

	// The old refresh token is single use: gone from the store, replaced by
	// a fresh one under a different key.
	keys := store.refreshKeys()
	require.Len(t, keys, 1)
	assert.NotEqual(t, "refresh_token:"+refreshToken, keys[0])
	assert.True(t, strings.HasPrefix(keys[0], "refresh_token:"))
	assert.Equal(t, userID.String(), store.data[keys[0]])

	// Both cookies are reissued.
	cookieNames := make([]string, 0, 2)
	for _, cookie := range resp.Cookies() {
		cookieNames = append(cookieNames, cookie.Name)
	}
	assert.Contains(t, cookieNames, "access_token")
	assert.Contains(t, cookieNames, "refresh_token")
}

func TestProtectedRouteRejectsReusedRefreshToken(t *testing.T) {
	store := newFakeTokenStore()
	app, maker := newProtectedApp(t, store)

	userID := uuid.New()
	refreshToken, err := maker.CreateToken(userID, "operador@example.com", time.Hour)
	require.NoError(t, err)
	store.data["refresh_token:"+refreshToken] = userID.String()

	first := withCookie(httptest.NewRequest(http.MethodGet, "/protected", nil), "refresh_token", refreshToken)
	resp, err := app.Test(first)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Replaying the rotated-out token is a stolen-cookie signature: 401.
	second := withCookie(httptest.NewRequest(http.MethodGet, "/protected", nil), "refresh_token", refreshToken)
	resp, err = app.Test(second)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRouteRejectsUnknownRefreshToken(t *testing.T) {
	store := newFakeTokenStore()
	app, maker := newProtectedApp(t, store)

	refreshToken, err := maker.CreateToken(uuid.New(), "operador@example.com", time.Hour)
	require.NoError(t, err)

	req := withCookie(httptest.NewRequest(http.MethodGet, "/protected", nil), "refresh_token", refreshToken)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
