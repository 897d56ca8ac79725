package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Inventario-repuestos/internal/application/analytics"
	"github.com/jhoicas/Inventario-repuestos/internal/application/barcodes"
	"github.com/jhoicas/Inventario-repuestos/internal/application/inventory"
	"github.com/jhoicas/Inventario-repuestos/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Barcodes      *barcodes.UseCase
	Stock         *inventory.StockUseCase
	Movements     *inventory.MovementUseCase
	Parts         *usecase.PartUseCase
	Suppliers     *usecase.SupplierUseCase
	Tracking      *usecase.TrackingUseCase
	PartsRequests *usecase.PartsRequestUseCase
	Dashboard     *appanalytics.DashboardUseCase

	Auth         AuthConfig
	AllowedRoles []string // vacío = cualquier rol autenticado
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Health (público)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Todo /api requiere Bearer Token
	api := app.Group("/api", AuthMiddleware(deps.Auth), RequireRole(deps.AllowedRoles...))

	// Barcodes
	bc := api.Group("/barcodes")
	barcodeHandler := NewBarcodeHandler(deps.Barcodes)
	bc.Post("/ean13", barcodeHandler.Generate)
	bc.Get("/ean13/check-digit", barcodeHandler.CheckDigit)
	bc.Get("/ean13/:code/validate", barcodeHandler.Validate)
	bc.Get("/ean13/:code.png", barcodeHandler.EAN13PNG)
	bc.Get("/qr.png", barcodeHandler.QRPNG)
	bc.Post("/labels", barcodeHandler.LabelSheet)

	// Stock
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.Stock)
	stock.Get("/", stockHandler.Get)
	stock.Get("/all", stockHandler.ListByPart)
	stock.Get("/total", stockHandler.Total)

	// Entradas y salidas
	movementHandler := NewMovementHandler(deps.Movements)
	api.Post("/entries", movementHandler.RegisterEntry)
	api.Post("/exits", movementHandler.RegisterExit)
	api.Get("/movements/search", movementHandler.Search)
	api.Get("/movements/last", movementHandler.Last)

	// Parts
	parts := api.Group("/parts")
	partHandler := NewPartHandler(deps.Parts)
	parts.Post("/", partHandler.Create)
	parts.Get("/", partHandler.List)
	parts.Get("/:id", partHandler.GetByID)
	parts.Post("/:id/ean", partHandler.AssignEAN)
	parts.Delete("/:id", partHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.Suppliers)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Tracking
	tracking := api.Group("/tracking")
	trackingHandler := NewTrackingHandler(deps.Tracking)
	tracking.Post("/", trackingHandler.Create)
	tracking.Get("/", trackingHandler.List)

	// Parts requests
	requests := api.Group("/parts-requests")
	requestHandler := NewPartsRequestHandler(deps.PartsRequests)
	requests.Post("/", requestHandler.Create)
	requests.Get("/", requestHandler.List)
	requests.Get("/pick-list.pdf", requestHandler.PickList)
	requests.Post("/:id/complete", requestHandler.Complete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
