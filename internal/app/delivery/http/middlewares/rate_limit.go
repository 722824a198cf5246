package middlewares

import (
	"net/http"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit limits every client IP to App.MaxRequests per second.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests())
		}),
	)
}

// BookingRateLimit guards the booking endpoint with a token bucket per IP that
// blocks the client for App.BookingBlockTimeInSeconds once it bursts past the limit.
func (m *Middlewares) BookingRateLimit() func(next http.Handler) http.Handler {
	limiter := NewRateLimiter(
		m.Log,
		m.InternalConfig.App.BookingBurstPerSecond,
		time.Second,
		time.Duration(m.InternalConfig.App.BookingBlockTimeInSeconds)*time.Second,
	)
	return limiter.Limit
}
