package middleware

import (
	"strings"

	"quizgen/internal/domain"
	"quizgen/internal/logger"
	"quizgen/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	IdentityKey         = "identity" // Key for storing domain.Identity in fiber.Ctx locals
)

// Protected requires a valid bearer token. Missing or invalid credentials
// fail the request with 401 before any other work occurs.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return domain.NewUnauthorizedError("Not authenticated")
		}

		userID, err := authService.ValidateToken(tokenString)
		if err != nil {
			logger.Get().Debug("Token validation failed", zap.Error(err))
			return domain.NewUnauthorizedError("Not authenticated")
		}

		c.Locals(IdentityKey, domain.Authenticated(userID))
		return c.Next()
	}
}

// OptionalAuth attaches an authenticated identity when a valid bearer token
// is present and proceeds as anonymous otherwise. Verification failure never
// fails the request here.
func OptionalAuth(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return c.Next()
		}

		userID, err := authService.ValidateToken(tokenString)
		if err != nil {
			logger.Get().Debug("OptionalAuth: proceeding as anonymous", zap.Error(err))
			return c.Next()
		}

		c.Locals(IdentityKey, domain.Authenticated(userID))
		return c.Next()
	}
}

// IdentityFromCtx returns the identity resolved by the auth middleware,
// Anonymous when none was attached.
func IdentityFromCtx(c *fiber.Ctx) domain.Identity {
	if identity, ok := c.Locals(IdentityKey).(domain.Identity); ok {
		return identity
	}
	return domain.Anonymous()
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get(AuthorizationHeader)
	if authHeader == "" || !strings.HasPrefix(authHeader, BearerSchema) {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, BearerSchema)
	if tokenString == "" {
		return "", false
	}
	return tokenString, true
}
