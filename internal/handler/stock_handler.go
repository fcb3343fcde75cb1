package handler

import (
	"cafe-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	service service.StockService
}

func NewStockHandler(s service.StockService) *StockHandler {
	return &StockHandler{service: s}
}

// StockList shows net quantity per active product
// GET /stock_list
func (h *StockHandler) StockList(c *fiber.Ctx) error {
	rows, err := h.service.CurrentStock()
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "stock_list", fiber.Map{"Stock": rows})
}
