package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// AuditLogHandler maneja la lectura de la bitácora de movimientos.
// La bitácora solo se escribe desde el libro de stock; aquí no hay POST.
type AuditLogHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditLogHandler construye el handler.
func NewAuditLogHandler(uc *usecase.AuditUseCase) *AuditLogHandler {
	return &AuditLogHandler{uc: uc}
}

// List godoc
// @Summary      Listar bitácora de movimientos
// @Description  Filtros opcionales por artículo o usuario; combina a lo sumo uno.
// @Tags         audit-logs
// @Produce      json
// @Param        item_id  query  string  false  "Filtro por artículo"
// @Param        user_id  query  string  false  "Filtro por usuario"
// @Success      200      {array}  dto.AuditLogResponse
// @Router       /api/audit-logs [get]
func (h *AuditLogHandler) List(c *fiber.Ctx) error {
	var (
		out []*dto.AuditLogResponse
		err error
	)
	switch {
	case c.Query("item_id") != "":
		out, err = h.uc.ListByItem(c.Query("item_id"))
	case c.Query("user_id") != "":
		out, err = h.uc.ListByUser(c.Query("user_id"))
	default:
		out, err = h.uc.ListAll()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByItem godoc
// @Summary      Bitácora de un artículo
// @Tags         audit-logs
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {array}  dto.AuditLogResponse
// @Router       /api/audit-logs/item/{id} [get]
func (h *AuditLogHandler) ListByItem(c *fiber.Ctx) error {
	out, err := h.uc.ListByItem(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByUser godoc
// @Summary      Bitácora de un usuario
// @Tags         audit-logs
// @Produce      json
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {array}  dto.AuditLogResponse
// @Router       /api/audit-logs/user/{id} [get]
func (h *AuditLogHandler) ListByUser(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
