package middleware

import (
	"cafe-inventory/internal/model"
	"cafe-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie carries the signed session token.
const SessionCookie = "cafe_session"

const userKey = "current_user"

// RequireAuth validates the session cookie and stores the user in context.
// Anonymous requests are redirected to the login page, not rejected.
func RequireAuth(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authService.Authenticate(c.Cookies(SessionCookie))
		if err != nil {
			c.ClearCookie(SessionCookie)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user set by RequireAuth, or nil on public routes.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(userKey).(*model.User)
	return user
}
