package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-ops/internal/handler/api"
	"hotel-ops/internal/handler/middleware"
	"hotel-ops/internal/pkg/config"
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
	roomHandler *api.RoomHandler,
	reservationHandler *api.ReservationHandler,
	maintenanceHandler *api.MaintenanceHandler,
	stockHandler *api.StockHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, roomHandler, reservationHandler, maintenanceHandler, stockHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	roomHandler *api.RoomHandler,
	reservationHandler *api.ReservationHandler,
	maintenanceHandler *api.MaintenanceHandler,
	stockHandler *api.StockHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.GetRoom},
				{Method: http.MethodPut, Path: "/:id/housekeeping", Handler: roomHandler.SetHousekeepingStatus},
				{Method: http.MethodGet, Path: "/:id/tickets", Handler: roomHandler.ListRoomTickets},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: reservationHandler.Confirm},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: reservationHandler.CheckIn},
				{Method: http.MethodPost, Path: "/:id/check-out", Handler: reservationHandler.CheckOut},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/no-show", Handler: reservationHandler.MarkNoShow},
			})
		}

		maintenance := apiGroup.Group("/maintenance/tickets")
		{
			addRoutes(maintenance, []route{
				{Method: http.MethodPost, Path: "", Handler: maintenanceHandler.ReportTicket},
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListOpenTickets},
				{Method: http.MethodPost, Path: "/:id/start", Handler: maintenanceHandler.StartTicket},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: maintenanceHandler.CompleteTicket},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: maintenanceHandler.CancelTicket},
				{Method: http.MethodPost, Path: "/:id/notes", Handler: maintenanceHandler.AppendNote},
			})
		}

		stock := apiGroup.Group("/stock")
		{
			addRoutes(stock, []route{
				{Method: http.MethodPost, Path: "/movements", Handler: stockHandler.RecordMovement},
				{Method: http.MethodPost, Path: "/dotations/apply", Handler: stockHandler.ApplyDotation},
				{Method: http.MethodGet, Path: "/products", Handler: stockHandler.ListProducts},
				{Method: http.MethodGet, Path: "/products/:id", Handler: stockHandler.GetProduct},
				{Method: http.MethodGet, Path: "/products/:id/movements", Handler: stockHandler.ListMovements},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/notifications", Handler: stockHandler.ListNotifications},
		})
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
