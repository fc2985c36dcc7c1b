package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
)

func TestRequestIDMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewRequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(RequestIDKey).(string))
	})

	supplied := ulid.Make().String()

	tests := []struct {
		name     string
		header   string
		wantKept bool
	}{
		{"absent", "", false},
		{"valid ulid", supplied, true},
		{"arbitrary text", "hello\tworld", false},
		{"overlong ulid", supplied + "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDKey, tt.header)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}

			got := resp.Header.Get(RequestIDKey)
			if _, err := ulid.ParseStrict(got); err != nil {
				t.Fatalf("Expected a ULID request id, got %q", got)
			}
			if tt.wantKept && got != tt.header {
				t.Errorf("Expected supplied id %q to be kept, got %q", tt.header, got)
			}
			if !tt.wantKept && got == tt.header {
				t.Errorf("Expected supplied id %q to be replaced", tt.header)
			}
		})
	}
}
