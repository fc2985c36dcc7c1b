package middleware

import (
	jwtPkg "ExpenseTracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewTokenMiddleware(ctx *fiber.Ctx) error
	NewLoggingMiddleware(ctx *fiber.Ctx) error
	NewMetricsMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	MetricsHandler() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type Options struct {
	RateLimit rate.Limit
	RateBurst int
}

type middleware struct {
	jwt                 jwtPkg.IJWT
	rateLimitter        *rateLimiter
	metrics             *metrics
	requestIDMiddleware fiber.Handler
	log                 *logrus.Logger
}

func New(logger *logrus.Logger, jwt jwtPkg.IJWT, opts Options) Middleware {
	if opts.RateLimit <= 0 {
		opts.RateLimit = 50
	}
	if opts.RateBurst <= 0 {
		opts.RateBurst = 100
	}

	return &middleware{
		jwt:                 jwt,
		rateLimitter:        newRateLimiter(opts.RateLimit, opts.RateBurst),
		metrics:             newMetrics(),
		requestIDMiddleware: NewRequestIDMiddleware(),
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}
