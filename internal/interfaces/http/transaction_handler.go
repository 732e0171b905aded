package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/billing"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	appledger "github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain"
	domledger "github.com/jhoicas/Almacen-api/internal/domain/ledger"
	"github.com/jhoicas/Almacen-api/pkg/validator"
)

// TransactionHandler expone el motor del ledger y la descarga de comprobantes.
type TransactionHandler struct {
	ledgerUC  *appledger.RecordTransactionUseCase
	invoiceUC *billing.InvoiceUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(ledgerUC *appledger.RecordTransactionUseCase, invoiceUC *billing.InvoiceUseCase) *TransactionHandler {
	return &TransactionHandler{ledgerUC: ledgerUC, invoiceUC: invoiceUC}
}

// Create godoc
// @Summary      Registrar transacción IN/OUT
// @Description  Aplica la transacción contra el stock del producto de forma atómica.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Movimiento de stock"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.Struct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(errs)})
	}
	out, err := h.ledgerUC.Record(c.UserContext(), in)
	if err != nil {
		return h.mapEngineError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener transacción por ID
// @Tags         transactions
// @Produce      json
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.ledgerUC.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Transaction not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar transacciones del ledger
// @Tags         transactions
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.TransactionListResponse
// @Router       /transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	out, err := h.ledgerUC.List(c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DownloadInvoice godoc
// @Summary      Descargar comprobante PDF de una transacción
// @Tags         transactions
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /transactions/{id}/invoice [get]
func (h *TransactionHandler) DownloadInvoice(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.invoiceUC.DownloadInvoicePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Transaction not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

// mapEngineError traduce los errores del motor a códigos HTTP. Los mensajes
// de validación y de stock insuficiente viajan tal cual al cliente: son
// parte del contrato de la API.
func (h *TransactionHandler) mapEngineError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Product not found"})
	}
	if errors.Is(err, domledger.ErrInvalidType) || errors.Is(err, domledger.ErrNonPositiveQuantity) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TRANSACTION", Message: err.Error()})
	}
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: insufficient.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
