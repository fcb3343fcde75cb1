package handler

import (
	"strconv"

	"cafe-inventory/internal/apperror"
	"cafe-inventory/internal/middleware"
	"cafe-inventory/internal/model"
	"cafe-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	service service.InventoryService
}

func NewTransactionHandler(s service.InventoryService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// formData loads the option lists. All products are offered, including
// soft-deleted ones, so existing movements can still be corrected.
func (h *TransactionHandler) formData(data fiber.Map) (fiber.Map, error) {
	products, err := h.service.ListAllProducts()
	if err != nil {
		return nil, err
	}
	users, err := h.service.ListUsers()
	if err != nil {
		return nil, err
	}
	data["Products"] = products
	data["Users"] = users
	data["Types"] = []model.TransactionType{model.TxIn, model.TxOut}
	return data, nil
}

func (h *TransactionHandler) renderForm(c *fiber.Ctx, status int, view string, data fiber.Map) error {
	data, err := h.formData(data)
	if err != nil {
		return err
	}
	return render(c, status, view, data)
}

func (h *TransactionHandler) renderFormFailure(c *fiber.Ctx, view, action string, err error, data fiber.Map) error {
	data["Error"] = action + ": " + apperror.Message(err)
	return h.renderForm(c, apperror.HTTPStatus(err), view, data)
}

// NewTransactionForm renders the stock movement form, preselecting the current user
// GET /stock_transaction
func (h *TransactionHandler) NewTransactionForm(c *fiber.Ctx) error {
	form := service.TransactionInput{Type: string(model.TxIn)}
	if user := middleware.CurrentUser(c); user != nil {
		form.UserID = strconv.FormatUint(uint64(user.ID), 10)
	}
	return h.renderForm(c, fiber.StatusOK, "stock_transaction", fiber.Map{"Form": form})
}

// RecordTransaction handles a stock movement
// POST /stock_transaction
func (h *TransactionHandler) RecordTransaction(c *fiber.Ctx) error {
	var req service.TransactionInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Failed to record transaction: malformed form")
	}

	if _, err := h.service.RecordTransaction(&req); err != nil {
		return h.renderFormFailure(c, "stock_transaction", "Failed to record transaction", err, fiber.Map{"Form": req})
	}

	return seeOther(c, "/stock_transaction_list")
}

// ListTransactions shows the full history including deleted markers
// GET /stock_transaction_list
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	rows, err := h.service.ListTransactions()
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "stock_transaction_list", fiber.Map{"Transactions": rows})
}

func transactionForm(tx *model.StockTransaction) service.TransactionInput {
	return service.TransactionInput{
		ProductID: strconv.FormatUint(uint64(tx.ProductID), 10),
		UserID:    strconv.FormatUint(uint64(tx.UserID), 10),
		Quantity:  strconv.Itoa(tx.Quantity),
		Type:      string(tx.Type),
		Notes:     tx.Notes,
	}
}

// EditTransactionForm renders the edit form
// GET /edit_stock_transaction/:id
func (h *TransactionHandler) EditTransactionForm(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
	}

	tx, err := h.service.GetTransaction(id)
	if err != nil {
		return lookupError(err, "Transaction not found")
	}

	return h.renderForm(c, fiber.StatusOK, "edit_stock_transaction", fiber.Map{
		"ID":   id,
		"Date": tx.TransactionDate,
		"Form": transactionForm(tx),
	})
}

// EditTransaction handles transaction update
// POST /edit_stock_transaction/:id
func (h *TransactionHandler) EditTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
	}

	var req service.TransactionInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Failed to update transaction: malformed form")
	}

	if _, err := h.service.UpdateTransaction(id, &req); err != nil {
		return h.renderFormFailure(c, "edit_stock_transaction", "Failed to update transaction", err, fiber.Map{"ID": id, "Form": req})
	}

	return seeOther(c, "/stock_transaction_list")
}

// DeleteTransaction soft-deletes a transaction
// POST /delete_stock_transaction/:id
func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
	}

	if err := h.service.SoftDeleteTransaction(id); err != nil {
		return fiber.NewError(apperror.HTTPStatus(err), "Failed to delete transaction: "+apperror.Message(err))
	}

	return seeOther(c, "/stock_transaction_list")
}
