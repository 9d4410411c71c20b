package bearer

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeboost/pkg/auth"
	"github.com/artem13815/resumeboost/pkg/logging"
)

// Locals keys set by the middleware.
const (
	LocalUser  = "user"
	LocalToken = "token"
)

// TokenFromHeader extracts the bearer token from an Authorization header.
// Both "Bearer <token>" and "<token>" (no prefix) are accepted.
func TokenFromHeader(authHeader string) string {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return ""
	}
	if strings.Contains(authHeader, " ") {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	// Fallback: treat entire header as token (for non-standard clients)
	return authHeader
}

// NewAuthMiddleware returns a Fiber middleware that resolves the bearer token
// into a user. On success the user is stored in c.Locals(LocalUser) and the
// raw token in c.Locals(LocalToken).
func NewAuthMiddleware(uc auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := TokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		user, err := uc.Authenticate(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, auth.ErrUnauthorized) {
				return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token"})
			}
			logging.WithError(err).Error("authenticate bearer token")
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "failed to authenticate"})
		}
		c.Locals(LocalUser, user)
		c.Locals(LocalToken, token)
		return c.Next()
	}
}

// NewOptionalAuthMiddleware resolves the bearer token when one is present
// and valid, and otherwise lets the request through anonymously.
func NewOptionalAuthMiddleware(uc auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := TokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if token != "" {
			if user, err := uc.Authenticate(c.UserContext(), token); err == nil {
				c.Locals(LocalUser, user)
				c.Locals(LocalToken, token)
			}
		}
		return c.Next()
	}
}

// UserFrom returns the authenticated user stored by the middleware.
func UserFrom(c *fiber.Ctx) (auth.User, bool) {
	user, ok := c.Locals(LocalUser).(auth.User)
	return user, ok
}
