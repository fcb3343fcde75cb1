package router

import (
	"errors"
	"log"

	"cafe-inventory/internal/apperror"
	"cafe-inventory/internal/handler"
	"cafe-inventory/internal/middleware"
	"cafe-inventory/internal/service"
	"cafe-inventory/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type Handlers struct {
	Product     *handler.ProductHandler
	Transaction *handler.TransactionHandler
	Stock       *handler.StockHandler
	Auth        *handler.AuthHandler
	AuthService service.AuthService
}

// New creates the fiber app with the view engine and the common middleware.
func New(appName string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		Views:        web.NewViews(),
		ErrorHandler: errorHandler,
	})

	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${method} ${path} - ${latency}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(recover.New())
	app.Use(helmet.New(helmet.Config{
		XFrameOptions: "DENY",
	}))

	return app
}

// errorHandler answers with a plain text page. Form failures never get here,
// handlers re-render those themselves.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal Server Error"

	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
		msg = fe.Message
	case apperror.HTTPStatus(err) != fiber.StatusInternalServerError:
		code = apperror.HTTPStatus(err)
		msg = apperror.Message(err)
	default:
		log.Printf("request %v failed: %v", c.Locals("requestid"), err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(msg)
}

// Register wires every page route.
func Register(app *fiber.App, h *Handlers) {
	auth := middleware.RequireAuth(h.AuthService)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/stock_list", fiber.StatusSeeOther)
	})

	// Session
	app.Get("/login", h.Auth.LoginForm)
	app.Post("/login", h.Auth.Login)
	app.Get("/register", h.Auth.RegisterForm)
	app.Post("/register", h.Auth.Register)
	app.Get("/logout", auth, h.Auth.Logout)

	// Products
	app.Get("/add_product", auth, h.Product.AddProductForm)
	app.Post("/add_product", auth, h.Product.AddProduct)
	app.Get("/products", auth, h.Product.ListProducts)
	app.Get("/edit_product/:id", h.Product.EditProductForm)
	app.Post("/edit_product/:id", h.Product.EditProduct)
	app.Post("/delete_product/:id", h.Product.DeleteProduct)

	// Stock movements
	app.Get("/stock_transaction", auth, h.Transaction.NewTransactionForm)
	app.Post("/stock_transaction", auth, h.Transaction.RecordTransaction)
	app.Get("/stock_transaction_list", auth, h.Transaction.ListTransactions)
	app.Get("/edit_stock_transaction/:id", h.Transaction.EditTransactionForm)
	app.Post("/edit_stock_transaction/:id", h.Transaction.EditTransaction)
	app.Post("/delete_stock_transaction/:id", h.Transaction.DeleteTransaction)

	app.Get("/stock_list", auth, h.Stock.StockList)
}
