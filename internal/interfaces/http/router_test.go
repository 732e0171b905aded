package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Almacen-api/internal/interfaces/http"
)

// buildRouterApp registra las rutas con handlers nil: alcanza para probar
// que las escrituras sin token mueren en el middleware con 401 antes de
// llegar a cualquier handler.
func buildRouterApp() *fiber.App {
	app := fiber.New()
	apphttp.RegisterRoutes(app, apphttp.Handlers{
		Auth:        apphttp.NewAuthHandler(nil),
		Product:     apphttp.NewProductHandler(nil),
		Supplier:    apphttp.NewSupplierHandler(nil),
		Customer:    apphttp.NewCustomerHandler(nil),
		Transaction: apphttp.NewTransactionHandler(nil, nil),
	}, testJWTSecret)
	return app
}

// Toda escritura sin token debe rechazarse con 401 sin tocar el caso de uso.
func TestRutas_EscriturasSinTokenRechazadas(t *testing.T) {
	app := buildRouterApp()

	writes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/products/"},
		{http.MethodPut, "/products/123"},
		{http.MethodDelete, "/products/123"},
		{http.MethodPost, "/suppliers/"},
		{http.MethodPost, "/customers/"},
		{http.MethodPost, "/transactions/"},
		{http.MethodGet, "/transactions/123/invoice"},
	}

	for _, w := range writes {
		req := httptest.NewRequest(w.method, w.path, strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err, "%s %s", w.method, w.path)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
			"%s %s debe exigir Bearer token", w.method, w.path)
	}
}
