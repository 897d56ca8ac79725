package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Inventario-repuestos/docs"
	appanalytics "github.com/jhoicas/Inventario-repuestos/internal/application/analytics"
	"github.com/jhoicas/Inventario-repuestos/internal/application/barcodes"
	"github.com/jhoicas/Inventario-repuestos/internal/application/inventory"
	"github.com/jhoicas/Inventario-repuestos/internal/application/usecase"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/barcode"
	infrapdf "github.com/jhoicas/Inventario-repuestos/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-repuestos/internal/infrastructure/render"
	httpRouter "github.com/jhoicas/Inventario-repuestos/internal/interfaces/http"
	"github.com/jhoicas/Inventario-repuestos/pkg/config"
	"github.com/jhoicas/Inventario-repuestos/pkg/logger"
)

// @title        Inventario de Repuestos API
// @version      1.0
// @description  Entradas, salidas y stock de repuestos; generación y render de códigos EAN-13 y QR.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	st, closeStores, err := openStores(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeStores()

	gen := barcode.NewGenerator(nil)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	stockUC := inventory.NewStockUseCase(st.stock, log)
	movementUC := inventory.NewMovementUseCase(st.entries, st.exits, log)
	barcodeUC := barcodes.NewUseCase(gen, render.NewBarcodeRenderer(), pdfGenerator, barcodes.Settings{
		Prefix: cfg.Barcode.EANPrefix,
		Width:  cfg.Barcode.Width,
		Height: cfg.Barcode.Height,
		QRSize: cfg.Barcode.QRSize,
	}, log)
	partUC := usecase.NewPartUseCase(st.parts, st.entries, st.exits, gen, cfg.Barcode.EANPrefix)
	supplierUC := usecase.NewSupplierUseCase(st.suppliers)
	trackingUC := usecase.NewTrackingUseCase(st.tracking)
	requestUC := usecase.NewPartsRequestUseCase(st.requests, st.parts, pdfGenerator)
	dashboardUC := appanalytics.NewDashboardUseCase(st.entries, st.exits, st.tracking, stockUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario de Repuestos API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Barcodes:      barcodeUC,
		Stock:         stockUC,
		Movements:     movementUC,
		Parts:         partUC,
		Suppliers:     supplierUC,
		Tracking:      trackingUC,
		PartsRequests: requestUC,
		Dashboard:     dashboardUC,
		Auth:          httpRouter.AuthConfig{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer},
		AllowedRoles:  cfg.JWT.AllowedRoles,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
