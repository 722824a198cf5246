package middlewares

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	now       func() time.Time
}

func NewRateLimiter(log *zap.Logger, rps int, per, blockTime time.Duration) *RateLimiter {
	if rps <= 0 {
		rps = 1
	}
	return &RateLimiter{
		log:       log,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  rps,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		r.mu.Lock()

		if blockedUntil, found := r.blocked[ip]; found {
			if r.now().Before(blockedUntil) {
				r.mu.Unlock()
				r.reject(w, req, ip, blockedUntil)
				return
			}

			delete(r.blocked, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per), r.requests)
			r.limiters[ip] = limiter
		}

		r.mu.Unlock()

		if !limiter.AllowN(r.now(), 1) {
			r.mu.Lock()
			blockedUntil := r.now().Add(r.blockTime)
			r.blocked[ip] = blockedUntil
			r.mu.Unlock()

			r.reject(w, req, ip, blockedUntil)
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) reject(w http.ResponseWriter, req *http.Request, ip string, blockedUntil time.Time) {
	retryAfter := int(blockedUntil.Sub(r.now()).Seconds()) + 1
	r.log.Warn("RateLimiter blocked request",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(req.Context())),
		zap.String(constvars.LoggingRemoteAddrKey, ip),
		zap.String(constvars.LoggingEndpointKey, req.URL.Path),
		zap.Int("retry_after", retryAfter),
	)
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(retryAfter))
	utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests())
}
