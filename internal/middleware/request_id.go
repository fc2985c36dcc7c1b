package middleware

import (
	contextPkg "ExpenseTracker/pkg/context"
	"ExpenseTracker/pkg/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

const RequestIDKey = contextPkg.LocalsRequestID

// NewRequestIDMiddleware reuses an incoming X-Request-ID only when it is a
// ULID; anything else is replaced so it never reaches logs or headers.
func NewRequestIDMiddleware() fiber.Handler {
	utilsInstance := utils.New()

	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)

		if !utilsInstance.IsULID(requestID) {
			requestID, _ = utilsInstance.NewULIDFromTimestamp(time.Now())
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}
