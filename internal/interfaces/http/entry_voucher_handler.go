package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// voucherError traduce los errores del libro de stock a respuestas HTTP.
// Stock insuficiente devuelve 400 con cantidades disponibles/solicitadas
// para que el frontend las muestre en el asistente.
func voucherError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK",
			Message: fmt.Sprintf("stock insuficiente para %q: disponible %d, solicitado %d",
				insufficient.ItemName, insufficient.Available, insufficient.Requested),
		})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id, worker_id y cantidades positivas son requeridos en cada línea"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario, trabajador, artículo o vale no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// EntryVoucherHandler maneja las peticiones HTTP para vales de entrada.
type EntryVoucherHandler struct {
	ledgerUC *ledger.StockLedgerUseCase
	queryUC  *usecase.VoucherQueryUseCase
	pdfUC    *ledger.VoucherPDFUseCase
}

// NewEntryVoucherHandler construye el handler.
func NewEntryVoucherHandler(
	ledgerUC *ledger.StockLedgerUseCase,
	queryUC *usecase.VoucherQueryUseCase,
	pdfUC *ledger.VoucherPDFUseCase,
) *EntryVoucherHandler {
	return &EntryVoucherHandler{ledgerUC: ledgerUC, queryUC: queryUC, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Crear vale de entrada (asistente)
// @Description  Crea el vale con todas sus líneas en una sola transacción e incrementa el stock de cada artículo.
// @Tags         entry-vouchers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVoucherRequest  true  "Vale con líneas"
// @Success      201   {object}  dto.VoucherResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entry-vouchers [post]
func (h *EntryVoucherHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ledgerUC.CreateEntryVoucher(c.UserContext(), in)
	if err != nil {
		return voucherError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar vales de entrada
// @Tags         entry-vouchers
// @Produce      json
// @Success      200  {array}  dto.VoucherResponse
// @Router       /api/entry-vouchers [get]
func (h *EntryVoucherHandler) List(c *fiber.Ctx) error {
	out, err := h.queryUC.ListEntryVouchers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener vale de entrada con sus líneas
// @Tags         entry-vouchers
// @Produce      json
// @Param        id   path  string  true  "ID del vale"
// @Success      200  {object}  dto.VoucherResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entry-vouchers/{id} [get]
func (h *EntryVoucherHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.queryUC.GetEntryVoucher(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vale no encontrado"})
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar vale de entrada en PDF
// @Tags         entry-vouchers
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del vale"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entry-vouchers/{id}/pdf [get]
func (h *EntryVoucherHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, filename, err := h.pdfUC.DownloadEntryVoucherPDF(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vale no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// ListDetails godoc
// @Summary      Listar todas las líneas de entrada
// @Tags         entry-vouchers
// @Produce      json
// @Success      200  {array}  dto.VoucherDetailResponse
// @Router       /api/entry-vouchers/details [get]
func (h *EntryVoucherHandler) ListDetails(c *fiber.Ctx) error {
	out, err := h.queryUC.ListEntryDetails()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListDetailsByVoucher godoc
// @Summary      Listar las líneas de un vale de entrada
// @Tags         entry-vouchers
// @Produce      json
// @Param        id   path  string  true  "ID del vale"
// @Success      200  {array}  dto.VoucherDetailResponse
// @Router       /api/entry-vouchers/{id}/details [get]
func (h *EntryVoucherHandler) ListDetailsByVoucher(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.queryUC.ListEntryDetailsByVoucher(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AppendDetail godoc
// @Summary      Agregar una línea a un vale de entrada existente
// @Description  Aplica la misma mutación de stock que el asistente, en su propia transacción.
// @Tags         entry-vouchers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AppendDetailRequest  true  "Línea nueva"
// @Success      201   {object}  dto.VoucherDetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entry-vouchers/details [post]
func (h *EntryVoucherHandler) AppendDetail(c *fiber.Ctx) error {
	var in dto.AppendDetailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ledgerUC.AppendEntryDetail(c.UserContext(), in)
	if err != nil {
		return voucherError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateDetail godoc
// @Summary      Editar una línea de entrada
// @Description  Corrige cantidad o trabajador de la línea histórica. No reajusta el stock.
// @Tags         entry-vouchers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la línea"
// @Param        body  body  dto.UpdateDetailRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.VoucherDetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entry-vouchers/details/{id} [put]
func (h *EntryVoucherHandler) UpdateDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateDetailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.queryUC.UpdateEntryDetail(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser positiva"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea no encontrada"})
	}
	return c.JSON(out)
}

// DeleteDetail godoc
// @Summary      Eliminar una línea de entrada
// @Description  Borra la línea histórica. No reajusta el stock.
// @Tags         entry-vouchers
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entry-vouchers/details/{id} [delete]
func (h *EntryVoucherHandler) DeleteDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.queryUC.DeleteEntryDetail(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "línea eliminada"})
}
