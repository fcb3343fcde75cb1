package handler

import (
	"cafe-inventory/internal/apperror"
	"cafe-inventory/internal/model"
	"cafe-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.InventoryService
}

func NewProductHandler(s service.InventoryService) *ProductHandler {
	return &ProductHandler{service: s}
}

// AddProductForm renders the registration form
// GET /add_product
func (h *ProductHandler) AddProductForm(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "add_product", fiber.Map{"Form": service.ProductInput{}})
}

// AddProduct handles product registration
// POST /add_product
func (h *ProductHandler) AddProduct(c *fiber.Ctx) error {
	var req service.ProductInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Failed to add product: malformed form")
	}

	if _, err := h.service.CreateProduct(&req); err != nil {
		return renderFailure(c, "add_product", "Failed to add product", err, fiber.Map{"Form": req})
	}

	return seeOther(c, "/add_product")
}

// ListProducts shows active products
// GET /products
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListActiveProducts()
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "products", fiber.Map{"Products": products})
}

func productForm(p *model.Product) service.ProductInput {
	return service.ProductInput{
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		UnitPrice:   p.UnitPrice.StringFixed(2),
	}
}

// EditProductForm renders the edit form
// GET /edit_product/:id
func (h *ProductHandler) EditProductForm(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Product not found")
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return lookupError(err, "Product not found")
	}

	return render(c, fiber.StatusOK, "edit_product", fiber.Map{"ID": id, "Form": productForm(product)})
}

// EditProduct handles product update
// POST /edit_product/:id
func (h *ProductHandler) EditProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Product not found")
	}

	var req service.ProductInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Failed to update product: malformed form")
	}

	if _, err := h.service.UpdateProduct(id, &req); err != nil {
		return renderFailure(c, "edit_product", "Failed to update product", err, fiber.Map{"ID": id, "Form": req})
	}

	return seeOther(c, "/products")
}

// DeleteProduct soft-deletes a product
// POST /delete_product/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Product not found")
	}

	if err := h.service.SoftDeleteProduct(id); err != nil {
		return fiber.NewError(apperror.HTTPStatus(err), "Failed to delete product: "+apperror.Message(err))
	}

	return seeOther(c, "/products")
}
