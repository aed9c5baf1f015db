package middleware

import (
	"sync"
	"time"

	"cardlytics/internal/errors"
	"cardlytics/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type client struct {
	limiter *rate.Limiter
	seen    time.Time
}

var (
	clients  = make(map[string]*client)
	clientMu sync.RWMutex

	// 5 req/sec with a burst of 10 keeps scripted scraping of the search
	// endpoints in check without bothering interactive clients.
	requestsPerSecond = 5
	burstSize         = 10
)

const (
	sweepEvery = time.Minute
	staleAfter = 3 * time.Minute
)

// RateLimiter throttles requests per client IP with a token bucket.
func RateLimiter() echo.MiddlewareFunc {
	go sweepClients()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiterFor(clientKey(c)).Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

// RateLimiterWithConfig overrides the default rate and burst before starting
// the limiter.
func RateLimiterWithConfig(rps int, burst int) echo.MiddlewareFunc {
	requestsPerSecond = rps
	burstSize = burst

	return RateLimiter()
}

func limiterFor(key string) *rate.Limiter {
	clientMu.Lock()
	defer clientMu.Unlock()

	cl, ok := clients[key]
	if !ok {
		limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize)
		clients[key] = &client{limiter: limiter, seen: time.Now()}
		return limiter
	}

	cl.seen = time.Now()
	return cl.limiter
}

// clientKey prefers proxy headers so every caller behind one load balancer
// does not share a single bucket.
func clientKey(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}

func sweepClients() {
	for {
		time.Sleep(sweepEvery)

		clientMu.Lock()
		for key, cl := range clients {
			if time.Since(cl.seen) > staleAfter {
				delete(clients, key)
			}
		}
		clientMu.Unlock()
	}
}
