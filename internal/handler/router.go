package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rentloop/internal/handler/api"
	"rentloop/internal/handler/middleware"
	"rentloop/internal/pkg/config"
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
	itemHandler *api.ItemHandler,
	rentalHandler *api.RentalHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, itemHandler, rentalHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	itemHandler *api.ItemHandler,
	rentalHandler *api.RentalHandler,
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
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		items := apiGroup.Group("/items")
		{
			addRoutes(items, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: itemHandler.Get},
			})

			itemsAuthed := items.Group("")
			itemsAuthed.Use(authMiddleware.RequireAuth())
			addRoutes(itemsAuthed, []route{
				{Method: http.MethodPost, Path: "", Handler: itemHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: itemHandler.ListOwn},
			})
		}

		paymentMethods := apiGroup.Group("/payment-methods")
		paymentMethods.Use(authMiddleware.RequireAuth())
		{
			addRoutes(paymentMethods, []route{
				{Method: http.MethodPost, Path: "", Handler: itemHandler.RegisterPaymentMethod},
			})
		}

		rentals := apiGroup.Group("/rentals")
		rentals.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rentals, []route{
				{Method: http.MethodPost, Path: "", Handler: rentalHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: rentalHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: rentalHandler.Get},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: rentalHandler.Accept},
				{Method: http.MethodPost, Path: "/:id/decline", Handler: rentalHandler.Decline},
				{Method: http.MethodPost, Path: "/:id/pay", Handler: rentalHandler.Pay},
				{Method: http.MethodPost, Path: "/:id/payout", Handler: rentalHandler.Payout},
				{Method: http.MethodPost, Path: "/:id/handovers", Handler: rentalHandler.CreateHandover},
				{Method: http.MethodPost, Path: "/:id/handovers/:type/accept", Handler: rentalHandler.AcceptHandover},
				{Method: http.MethodPost, Path: "/:id/handovers/:type/decline", Handler: rentalHandler.DeclineHandover},
				{Method: http.MethodPost, Path: "/:id/ratings", Handler: rentalHandler.Rate},
				{Method: http.MethodPost, Path: "/:id/messages", Handler: rentalHandler.PostMessage},
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
