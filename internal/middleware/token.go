package middleware

import (
	"ExpenseTracker/internal/entity"
	jwtPkg "ExpenseTracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// NewTokenMiddleware rejects the request with 403 unless it carries a valid
// bearer token, and exposes the caller to handlers through jwtPkg.GetUserLoginData.
func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	claims, err := m.jwt.VerifyTokenHeader(ctx)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": m.GetRequestID(ctx),
			"path":       ctx.Path(),
			"method":     ctx.Method(),
			"client_ip":  ctx.IP(),
			"error":      err.Error(),
		}).Warn("Token verification failed")
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden: missing or invalid access token",
		})
	}

	ctx.Locals(jwtPkg.UserLocalsKey, entity.UserLoginData{
		ID:       claims.UserID,
		Username: claims.Username,
	})

	m.log.WithFields(logrus.Fields{
		"request_id": m.GetRequestID(ctx),
		"user_id":    claims.UserID,
	}).Debug("Authentication successful")

	return ctx.Next()
}
