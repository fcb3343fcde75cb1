package handler

import (
	"errors"
	"strconv"

	"cafe-inventory/internal/apperror"
	"cafe-inventory/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

const layout = "layouts/main"

// render fills the values every page needs and renders inside the main layout.
func render(c *fiber.Ctx, status int, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if user := middleware.CurrentUser(c); user != nil {
		data["CurrentUser"] = user
	}
	return c.Status(status).Render(view, data, layout)
}

// renderFailure re-renders a form with a message tied to the attempted action.
func renderFailure(c *fiber.Ctx, view, action string, err error, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Error"] = action + ": " + apperror.Message(err)
	return render(c, apperror.HTTPStatus(err), view, data)
}

func seeOther(c *fiber.Ctx, location string) error {
	return c.Redirect(location, fiber.StatusSeeOther)
}

// Helper untuk parse ID dari path
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.NotFound("invalid id %q", c.Params("id"))
	}
	return uint(id), nil
}

// lookupError keeps storage failures distinct from a missing row.
func lookupError(err error, notFound string) error {
	if errors.Is(err, apperror.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, notFound)
	}
	return err
}
