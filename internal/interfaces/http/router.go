package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vilamar/pousada-api/internal/application/analytics"
	"github.com/vilamar/pousada-api/internal/application/auth"
	"github.com/vilamar/pousada-api/internal/application/inventory"
	"github.com/vilamar/pousada-api/internal/application/pos"
	"github.com/vilamar/pousada-api/internal/application/reservation"
	"github.com/vilamar/pousada-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC      *usecase.ClientUseCase
	RoomUC        *usecase.RoomUseCase
	ProductUC     *usecase.ProductUseCase
	ServiceUC     *usecase.ServiceUseCase
	UserUC        *usecase.UserUseCase
	ReservationUC *reservation.UseCase
	ReceiptUC     *reservation.ReceiptUseCase
	ProductSaleUC *pos.ProductSaleUseCase
	ServiceSaleUC *pos.ServiceSaleUseCase
	InventoryUC   *inventory.UseCase
	DashboardUC   *analytics.DashboardUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
//
// Las rutas operativas quedan públicas: el cliente web de la recepción
// todavía no maneja sesiones. Cuando lo haga, basta con agrupar con
// AuthMiddleware(deps.JWTSecret).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Rooms
	rooms := api.Group("/rooms")
	roomHandler := NewRoomHandler(deps.RoomUC)
	rooms.Post("/", roomHandler.Create)
	rooms.Get("/", roomHandler.List)
	rooms.Get("/available", roomHandler.ListAvailable)
	rooms.Get("/:id", roomHandler.GetByID)
	rooms.Put("/:id", roomHandler.Update)
	rooms.Delete("/:id", roomHandler.Delete)

	// Reservations (ciclo de check-in/check-out)
	reservations := api.Group("/reservations")
	reservationHandler := NewReservationHandler(deps.ReservationUC, deps.ReceiptUC)
	reservations.Post("/", reservationHandler.Create)
	reservations.Get("/", reservationHandler.List)
	reservations.Get("/active", reservationHandler.ListActive)
	reservations.Get("/:id", reservationHandler.GetByID)
	reservations.Put("/:id", reservationHandler.Update)
	reservations.Get("/:id/charges", reservationHandler.Charges)
	reservations.Post("/:id/checkout", reservationHandler.Checkout)
	reservations.Post("/:id/cancel", reservationHandler.Cancel)
	reservations.Get("/:id/receipt", reservationHandler.Receipt)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Services
	services := api.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	// Point of sale (consumos cargados a reservas)
	saleHandler := NewSaleHandler(deps.ProductSaleUC, deps.ServiceSaleUC)
	productSales := api.Group("/product-sales")
	productSales.Post("/", saleHandler.CreateProductSale)
	productSales.Get("/", saleHandler.ListProductSales)
	productSales.Delete("/:id", saleHandler.DeleteProductSale)
	serviceSales := api.Group("/service-sales")
	serviceSales.Post("/", saleHandler.CreateServiceSale)
	serviceSales.Get("/", saleHandler.ListServiceSales)

	// Inventory movements
	movements := api.Group("/inventory-movements")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	movements.Post("/", inventoryHandler.Register)
	movements.Get("/", inventoryHandler.List)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)

	// Users (funcionarios)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
