package middleware

import (
	"net/http"
	"strconv"

	"github.com/estla/skillserver/internal/metrics"
	"github.com/estla/skillserver/pkg/logger_i"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

type step func(c *Chain, re requestResponseStruct) requestResponseStruct

type Config struct {
	AdminToken string
	RateLimit  float64
	RateBurst  int
}

// Chain holds what the request steps need: the admin token and the per-IP
// limiters.
type Chain struct {
	adminToken string
	limiter    *IPRateLimiter
	logger     *logger_i.Logger
}

func New(cfg Config) *Chain {
	return &Chain{
		adminToken: cfg.AdminToken,
		limiter:    NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		logger:     logger_i.NewLogger("middleware"),
	}
}

// Skill wraps Kakao webhook handlers. Kakao calls from a handful of
// addresses, so these are not rate limited per IP.
func (c *Chain) Skill(next http.HandlerFunc) http.HandlerFunc {
	return c.wrap(next, injectTrace)
}

// Public wraps the read-only JSON API and MCP endpoints.
func (c *Chain) Public(next http.HandlerFunc) http.HandlerFunc {
	return c.wrap(next, injectTrace, rateLimiter)
}

// Admin wraps endpoints that need the bearer token.
func (c *Chain) Admin(next http.HandlerFunc) http.HandlerFunc {
	return c.wrap(next, injectTrace, authenticate, rateLimiter)
}

func (c *Chain) wrap(next http.HandlerFunc, steps ...step) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: http.StatusOK}
		re := c.processRequest(requestResponseStruct{req: r, writer: rec}, steps)

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
		} else {
			next(rec, re.req)
		}

		metrics.HttpRequestsTotal.WithLabelValues(routePattern(re.req), strconv.Itoa(rec.Status)).Inc()
	}
}

func (c *Chain) processRequest(re requestResponseStruct, steps []step) requestResponseStruct {
	re.logger = c.logger
	re.logger.Debug("New request received", "method", re.req.Method, "path", re.req.URL.Path)
	for _, s := range steps {
		re = s(c, re)
		if re.badRequest.isBadRequest {
			return re
		}
	}
	return re
}

// routePattern keeps path labels bounded: /status/{id} rather than every id.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
