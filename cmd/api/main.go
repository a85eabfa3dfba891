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
	"github.com/vilamar/pousada-api/internal/application/analytics"
	"github.com/vilamar/pousada-api/internal/application/auth"
	"github.com/vilamar/pousada-api/internal/application/inventory"
	"github.com/vilamar/pousada-api/internal/application/pos"
	"github.com/vilamar/pousada-api/internal/application/reservation"
	"github.com/vilamar/pousada-api/internal/application/usecase"
	infrapdf "github.com/vilamar/pousada-api/internal/infrastructure/pdf"
	"github.com/vilamar/pousada-api/internal/infrastructure/postgres"
	httpRouter "github.com/vilamar/pousada-api/internal/interfaces/http"
	"github.com/vilamar/pousada-api/pkg/config"
	"github.com/vilamar/pousada-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	roomRepo := postgres.NewRoomRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	productSaleRepo := postgres.NewProductSaleRepository(pool)
	serviceSaleRepo := postgres.NewServiceSaleRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clientUC := usecase.NewClientUseCase(clientRepo)
	roomUC := usecase.NewRoomUseCase(roomRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	reservationUC := reservation.NewUseCase(
		txRunner, reservationRepo, roomRepo, productSaleRepo, serviceSaleRepo,
	)
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := reservation.NewReceiptUseCase(
		receiptGenerator, reservationRepo, roomRepo, clientRepo,
		productRepo, serviceRepo, productSaleRepo, serviceSaleRepo,
		cfg.App.Name,
	)

	productSaleUC := pos.NewProductSaleUseCase(txRunner, productSaleRepo, reservationRepo)
	serviceSaleUC := pos.NewServiceSaleUseCase(serviceSaleRepo, serviceRepo, reservationRepo)
	inventoryUC := inventory.NewUseCase(txRunner, movementRepo)
	dashboardUC := analytics.NewDashboardUseCase(statsRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pousada API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:      clientUC,
		RoomUC:        roomUC,
		ProductUC:     productUC,
		ServiceUC:     serviceUC,
		UserUC:        userUC,
		ReservationUC: reservationUC,
		ReceiptUC:     receiptUC,
		ProductSaleUC: productSaleUC,
		ServiceSaleUC: serviceSaleUC,
		InventoryUC:   inventoryUC,
		DashboardUC:   dashboardUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
