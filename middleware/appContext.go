package middleware

import (
	"context"
	"time"

	"cargo-logbook-backend/token"

	"github.com/redis/go-redis/v9"
)

// TokenStore is the slice of the Redis client the session middleware uses
// for refresh token rotation. *redis.Client satisfies it.
type TokenStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// AppContext carries the shared dependencies the middleware needs.
type AppContext struct {
	PasetoMaker token.Maker
	Ctx         context.Context
	RedisClient TokenStore
}
