package middleware

import (
	jwtPkg "ExpenseTracker/pkg/jwt"
	"ExpenseTracker/pkg/log"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestRateLimiterRejectsBurstOverflow(t *testing.T) {
	m := New(log.NewDiscardLogger(), jwtPkg.New("secret", time.Hour), Options{RateLimit: 0.001, RateBurst: 2})

	app := fiber.New()
	app.Get("/", m.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	want := []int{fiber.StatusOK, fiber.StatusOK, fiber.StatusTooManyRequests}
	for i, status := range want {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		if err != nil {
			t.Fatalf("Request %d failed: %v", i, err)
		}
		if resp.StatusCode != status {
			t.Errorf("Request %d: expected %d, got %d", i, status, resp.StatusCode)
		}
	}
}

func TestRateLimiterEvictsIdleBuckets(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := newRateLimiter(1, 1)
	r.now = func() time.Time { return clock }
	r.lastSweep = clock

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		r.GetLimiterFrom(ip)
	}

	clock = clock.Add(limiterIdleTTL / 2)
	r.GetLimiterFrom("10.0.0.1")

	clock = clock.Add(limiterIdleTTL/2 + limiterSweepInterval)
	r.GetLimiterFrom("10.0.0.4")

	if len(r.bucket) != 2 {
		t.Fatalf("Expected 2 live buckets, got %d", len(r.bucket))
	}
	for _, ip := range []string{"10.0.0.1", "10.0.0.4"} {
		if _, ok := r.bucket[ip]; !ok {
			t.Errorf("Expected bucket for %s to survive", ip)
		}
	}
}

func TestRateLimiterKeepsStateBetweenSweeps(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := newRateLimiter(1, 1)
	r.now = func() time.Time { return clock }
	r.lastSweep = clock

	first := r.GetLimiterFrom("10.0.0.1")
	clock = clock.Add(limiterSweepInterval / 2)
	if again := r.GetLimiterFrom("10.0.0.1"); again != first {
		t.Error("Expected the same bucket for a returning client")
	}
}
