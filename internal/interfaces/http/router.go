package http

import (
	"github.com/gofiber/fiber/v2"
)

// Handlers agrupa los handlers que el router registra.
type Handlers struct {
	Auth        *AuthHandler
	Product     *ProductHandler
	Supplier    *SupplierHandler
	Customer    *CustomerHandler
	Transaction *TransactionHandler
}

// RegisterRoutes registra las rutas de la API.
//
// Lecturas (listados y GET por id) son públicas; toda escritura y la
// descarga de comprobantes requieren Bearer token.
func RegisterRoutes(app *fiber.App, h Handlers, jwtSecret string) {
	authRequired := AuthMiddleware(jwtSecret)

	app.Post("/users/", h.Auth.Register)
	app.Post("/token", h.Auth.Token)

	products := app.Group("/products")
	products.Get("/", h.Product.List)
	products.Get("/:id", h.Product.GetByID)
	products.Post("/", authRequired, h.Product.Create)
	products.Put("/:id", authRequired, h.Product.Update)
	products.Delete("/:id", authRequired, h.Product.Delete)

	suppliers := app.Group("/suppliers")
	suppliers.Get("/", h.Supplier.List)
	suppliers.Post("/", authRequired, h.Supplier.Create)

	customers := app.Group("/customers")
	customers.Get("/", h.Customer.List)
	customers.Post("/", authRequired, h.Customer.Create)

	transactions := app.Group("/transactions")
	transactions.Get("/", h.Transaction.List)
	transactions.Get("/:id", h.Transaction.GetByID)
	transactions.Get("/:id/invoice", authRequired, h.Transaction.DownloadInvoice)
	transactions.Post("/", authRequired, h.Transaction.Create)
}
