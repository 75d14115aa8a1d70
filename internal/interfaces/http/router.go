package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockItemUC *usecase.StockItemUseCase
	WorkerUC    *usecase.WorkerUseCase
	UserUC      *usecase.UserUseCase
	CatalogUC   *usecase.CatalogUseCase
	LedgerUC    *ledger.StockLedgerUseCase
	VoucherUC   *usecase.VoucherQueryUseCase
	PDFUC       *ledger.VoucherPDFUseCase
	AuditUC     *usecase.AuditUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Stock del patio
	stockItems := api.Group("/stock-items")
	stockItemHandler := NewStockItemHandler(deps.StockItemUC)
	stockItems.Post("/", stockItemHandler.Create)
	stockItems.Get("/", stockItemHandler.List)
	stockItems.Get("/:id", stockItemHandler.GetByID)
	stockItems.Put("/:id", stockItemHandler.Update)
	stockItems.Put("/:id/quantity", stockItemHandler.SetQuantity)
	stockItems.Delete("/:id", stockItemHandler.Delete)

	// Trabajadores de obra
	workers := api.Group("/workers")
	workerHandler := NewWorkerHandler(deps.WorkerUC)
	workers.Post("/", workerHandler.Create)
	workers.Get("/", workerHandler.List)
	workers.Get("/:id", workerHandler.GetByID)
	workers.Put("/:id", workerHandler.Update)
	workers.Delete("/:id", workerHandler.Delete)

	// Usuarios de oficina
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Catálogo de productos (referencia del asistente)
	catalog := api.Group("/product-catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog.Post("/", catalogHandler.Create)
	catalog.Get("/", catalogHandler.List)
	catalog.Get("/:id", catalogHandler.GetByID)
	catalog.Put("/:id", catalogHandler.Update)
	catalog.Delete("/:id", catalogHandler.Delete)

	// Vales de entrada. Las rutas /details van antes de /:id para que el
	// router no las capture como parámetro.
	entries := api.Group("/entry-vouchers")
	entryHandler := NewEntryVoucherHandler(deps.LedgerUC, deps.VoucherUC, deps.PDFUC)
	entries.Post("/", entryHandler.Create)
	entries.Get("/", entryHandler.List)
	entries.Get("/details", entryHandler.ListDetails)
	entries.Post("/details", entryHandler.AppendDetail)
	entries.Put("/details/:id", entryHandler.UpdateDetail)
	entries.Delete("/details/:id", entryHandler.DeleteDetail)
	entries.Get("/:id", entryHandler.GetByID)
	entries.Get("/:id/details", entryHandler.ListDetailsByVoucher)
	entries.Get("/:id/pdf", entryHandler.DownloadPDF)

	// Vales de salida
	exits := api.Group("/exit-vouchers")
	exitHandler := NewExitVoucherHandler(deps.LedgerUC, deps.VoucherUC, deps.PDFUC)
	exits.Post("/", exitHandler.Create)
	exits.Get("/", exitHandler.List)
	exits.Get("/details", exitHandler.ListDetails)
	exits.Post("/details", exitHandler.AppendDetail)
	exits.Put("/details/:id", exitHandler.UpdateDetail)
	exits.Delete("/details/:id", exitHandler.DeleteDetail)
	exits.Get("/:id", exitHandler.GetByID)
	exits.Get("/:id/details", exitHandler.ListDetailsByVoucher)
	exits.Get("/:id/pdf", exitHandler.DownloadPDF)

	// Bitácora (solo lectura)
	auditHandler := NewAuditLogHandler(deps.AuditUC)
	api.Get("/audit-logs", auditHandler.List)
	api.Get("/audit-logs/item/:id", auditHandler.ListByItem)
	api.Get("/audit-logs/user/:id", auditHandler.ListByUser)
}
