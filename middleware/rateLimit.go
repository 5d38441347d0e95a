package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// AuthRateLimit throttles credential endpoints per client IP with a small
// token bucket. Idle buckets are dropped after an hour.
func AuthRateLimit(r rate.Limit, burst int) fiber.Handler {
	type bucket struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*bucket)
	)

	go func() {
		for range time.Tick(10 * time.Minute) {
			mu.Lock()
			for ip, b := range buckets {
				if time.Since(b.lastSeen) > time.Hour {
					delete(buckets, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *fiber.Ctx) error {
		mu.Lock()
		b, ok := buckets[c.IP()]
		if !ok {
			b = &bucket{limiter: rate.NewLimiter(r, burst)}
			buckets[c.IP()] = b
		}
		b.lastSeen = time.Now()
		allowed := b.limiter.Allow()
		mu.Unlock()

		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many attempts",
				"data":    nil,
				"error":   "Aguarde um momento antes de tentar novamente.",
			})
		}
		return c.Next()
	}
}
