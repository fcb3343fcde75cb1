package handler

import (
	"cafe-inventory/internal/middleware"
	"cafe-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService  service.AuthService
	cookieSecure bool
}

func NewAuthHandler(authService service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieSecure: cookieSecure}
}

// LoginRequest represents the login form
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// LoginForm renders the login page
// GET /login
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "login", fiber.Map{"Username": ""})
}

// Login handles user authentication
// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Failed to log in: malformed form")
	}

	response, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		return renderFailure(c, "login", "Failed to log in", err, fiber.Map{"Username": req.Username})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    response.Token,
		Path:     "/",
		Expires:  response.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return seeOther(c, "/stock_list")
}

// Logout ends the session
// GET /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if user := middleware.CurrentUser(c); user != nil {
		if err := h.authService.Logout(user.ID); err != nil {
			return err
		}
	}
	c.ClearCookie(middleware.SessionCookie)
	return seeOther(c, "/login")
}

// RegisterForm renders the registration page
// GET /register
func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "register", fiber.Map{"Form": service.RegisterRequest{}})
}

// Register creates a user and sends them to log in
// POST /register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Failed to register: malformed form")
	}

	if _, err := h.authService.Register(&req); err != nil {
		req.Password = ""
		return renderFailure(c, "register", "Failed to register", err, fiber.Map{"Form": req})
	}

	return seeOther(c, "/login")
}
