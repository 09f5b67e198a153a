package middleware

import (
	"sync"

	"golang.org/x/time/rate"
)

// maxTrackedIPs bounds the limiter map; past it the map starts over.
const maxTrackedIPs = 10000

type IPRateLimiter struct {
	ips       map[string]*rate.Limiter
	mu        sync.Mutex
	rateLimit rate.Limit
	burstRate int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{ips: make(map[string]*rate.Limiter), rateLimit: r, burstRate: b}
}

func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()
	if limiter, exists := i.ips[ip]; exists {
		return limiter
	}
	if len(i.ips) >= maxTrackedIPs {
		i.ips = make(map[string]*rate.Limiter)
	}
	limiter := rate.NewLimiter(i.rateLimit, i.burstRate)
	i.ips[ip] = limiter
	return limiter
}

// TODO: keep limiter state in redis once more than one instance serves traffic
