package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// ExitVoucherHandler maneja las peticiones HTTP para vales de salida.
type ExitVoucherHandler struct {
	ledgerUC *ledger.StockLedgerUseCase
	queryUC  *usecase.VoucherQueryUseCase
	pdfUC    *ledger.VoucherPDFUseCase
}

// NewExitVoucherHandler construye el handler.
func NewExitVoucherHandler(
	ledgerUC *ledger.StockLedgerUseCase,
	queryUC *usecase.VoucherQueryUseCase,
	pdfUC *ledger.VoucherPDFUseCase,
) *ExitVoucherHandler {
	return &ExitVoucherHandler{ledgerUC: ledgerUC, queryUC: queryUC, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Crear vale de salida (asistente)
// @Description  Crea el vale con todas sus líneas en una sola transacción. Si alguna línea no tiene stock suficiente se rechaza el vale entero sin tocar el stock.
// @Tags         exit-vouchers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVoucherRequest  true  "Vale con líneas"
// @Success      201   {object}  dto.VoucherResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/exit-vouchers [post]
func (h *ExitVoucherHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ledgerUC.CreateExitVoucher(c.UserContext(), in)
	if err != nil {
		return voucherError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar vales de salida
// @Tags         exit-vouchers
// @Produce      json
// @Success      200  {array}  dto.VoucherResponse
// @Router       /api/exit-vouchers [get]
func (h *ExitVoucherHandler) List(c *fiber.Ctx) error {
	out, err := h.queryUC.ListExitVouchers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener vale de salida con sus líneas
// @Tags         exit-vouchers
// @Produce      json
// @Param        id   path  string  true  "ID del vale"
// @Success      200  {object}  dto.VoucherResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exit-vouchers/{id} [get]
func (h *ExitVoucherHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.queryUC.GetExitVoucher(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vale no encontrado"})
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar vale de salida en PDF
// @Tags         exit-vouchers
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del vale"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exit-vouchers/{id}/pdf [get]
func (h *ExitVoucherHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, filename, err := h.pdfUC.DownloadExitVoucherPDF(c.UserContext(), id)
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
// @Summary      Listar todas las líneas de salida
// @Tags         exit-vouchers
// @Produce      json
// @Success      200  {array}  dto.VoucherDetailResponse
// @Router       /api/exit-vouchers/details [get]
func (h *ExitVoucherHandler) ListDetails(c *fiber.Ctx) error {
	out, err := h.queryUC.ListExitDetails()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListDetailsByVoucher godoc
// @Summary      Listar las líneas de un vale de salida
// @Tags         exit-vouchers
// @Produce      json
// @Param        id   path  string  true  "ID del vale"
// @Success      200  {array}  dto.VoucherDetailResponse
// @Router       /api/exit-vouchers/{id}/details [get]
func (h *ExitVoucherHandler) ListDetailsByVoucher(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.queryUC.ListExitDetailsByVoucher(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AppendDetail godoc
// @Summary      Agregar una línea a un vale de salida existente
// @Description  Aplica la misma verificación de stock que el asistente, en su propia transacción.
// @Tags         exit-vouchers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AppendDetailRequest  true  "Línea nueva"
// @Success      201   {object}  dto.VoucherDetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/exit-vouchers/details [post]
func (h *ExitVoucherHandler) AppendDetail(c *fiber.Ctx) error {
	var in dto.AppendDetailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ledgerUC.AppendExitDetail(c.UserContext(), in)
	if err != nil {
		return voucherError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateDetail godoc
// @Summary      Editar una línea de salida
// @Description  Corrige cantidad o trabajador de la línea histórica. No reajusta el stock.
// @Tags         exit-vouchers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la línea"
// @Param        body  body  dto.UpdateDetailRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.VoucherDetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/exit-vouchers/details/{id} [put]
func (h *ExitVoucherHandler) UpdateDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateDetailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.queryUC.UpdateExitDetail(id, in)
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
// @Summary      Eliminar una línea de salida
// @Description  Borra la línea histórica. No reajusta el stock.
// @Tags         exit-vouchers
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exit-vouchers/details/{id} [delete]
func (h *ExitVoucherHandler) DeleteDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.queryUC.DeleteExitDetail(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "línea eliminada"})
}
