package middleware

import (
	"sync"
	"time"

	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiterSet struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
}

func (s *limiterSet) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	// idle visitors are dropped lazily
	for k, v := range s.visitors {
		if now.Sub(v.lastSeen) > 10*time.Minute {
			delete(s.visitors, k)
		}
	}

	v, ok := s.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(s.rps, s.burst)}
		s.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

// RateLimitByUser limits per logged-in customer, falling back to the browser
// and then the client IP for guests.
func RateLimitByUser(rps float64, burst int) gin.HandlerFunc {
	set := &limiterSet{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
	}

	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if id := CustID(c); id != "" {
			key = "cust:" + id
		} else if local := Local(c); local != nil {
			key = "browser:" + local.BrowserID()
		}

		if !set.get(key, time.Now()).Allow() {
			response.FromError(c, apperror.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitByIP limits anonymous endpoints such as login and register.
func RateLimitByIP(rps float64, burst int) gin.HandlerFunc {
	set := &limiterSet{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
	}

	return func(c *gin.Context) {
		if !set.get("ip:"+c.ClientIP(), time.Now()).Allow() {
			response.FromError(c, apperror.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
