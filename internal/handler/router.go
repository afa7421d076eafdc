package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"travel-booking/internal/handler/api"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	inventoryHandler *api.InventoryHandler,
	catalogHandler *api.CatalogHandler,
	reservationHandler *api.ReservationHandler,
	availabilityHandler *api.AvailabilityHandler,
	transactionHandler *api.TransactionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, inventoryHandler, catalogHandler, reservationHandler, availabilityHandler, transactionHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	inventoryHandler *api.InventoryHandler,
	catalogHandler *api.CatalogHandler,
	reservationHandler *api.ReservationHandler,
	availabilityHandler *api.AvailabilityHandler,
	transactionHandler *api.TransactionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		inventory := apiGroup.Group("/inventory")
		inventory.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(inventory, []route{
				{Method: http.MethodPost, Path: "/hotels", Handler: inventoryHandler.AddHotel},
				{Method: http.MethodPost, Path: "/flights", Handler: inventoryHandler.AddFlight},
				{Method: http.MethodPost, Path: "/taxis", Handler: inventoryHandler.AddTaxi},
			})
		}

		packages := apiGroup.Group("/packages")
		packages.Use(authMiddleware.RequireAuth())
		{
			addRoutes(packages, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListPackages},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetPackage},
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreatePackage},
				{Method: http.MethodPatch, Path: "/:id", Handler: catalogHandler.UpdatePackage},
				{Method: http.MethodDelete, Path: "/:id", Handler: catalogHandler.DeletePackage, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
				{Method: http.MethodPost, Path: "/:id/discount", Handler: catalogHandler.ApplyDiscount, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation},
			})
		}

		availability := apiGroup.Group("/availability")
		availability.Use(authMiddleware.RequireAuth())
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "/hotels", Handler: availabilityHandler.SearchHotels},
				{Method: http.MethodGet, Path: "/flights", Handler: availabilityHandler.SearchFlights},
				{Method: http.MethodGet, Path: "/taxis", Handler: availabilityHandler.SearchTaxis},
				{Method: http.MethodGet, Path: "/products/:id", Handler: availabilityHandler.ProductAvailability},
			})
		}

		transactions := apiGroup.Group("/transactions")
		transactions.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(transactions, []route{
				{Method: http.MethodGet, Path: "", Handler: transactionHandler.ListTransactions},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
