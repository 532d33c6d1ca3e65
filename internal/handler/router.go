package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"campsite-booking/internal/handler/api"
	"campsite-booking/internal/handler/httperr"
	"campsite-booking/internal/handler/middleware"
	"campsite-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth           *api.AuthHandler
	Camping        *api.CampingHandler
	Spot           *api.SpotHandler
	Reservation    *api.ReservationHandler
	Comment        *api.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	httperr.UseJSONFieldNames()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := h.AuthMiddleware.RequireAuth()
	optionalAuth := h.AuthMiddleware.OptionalAuth()

	apiGroup := engine.Group("/api")
	{
		session := []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
		}
		auth := apiGroup.Group("/auth")
		addRoutes(auth, append(session,
			// the refresh cookie is scoped to /api/auth, so refresh has no top-level alias
			route{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
		))
		// /api/register, /api/login, /api/logout and /api/me stay available for existing clients
		addRoutes(apiGroup, session)

		// public reads resolve the actor when a token is sent
		campings := apiGroup.Group("/campings", optionalAuth)
		addRoutes(campings, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Camping.List},
			{Method: http.MethodGet, Path: "/suggestions", Handler: h.Camping.Suggestions},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Camping.Get},
			{Method: http.MethodGet, Path: "/:id/comments", Handler: h.Comment.ListByCamping},
			{Method: http.MethodPost, Path: "", Handler: h.Camping.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Camping.Update, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Camping.Delete, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/:id/comments", Handler: h.Comment.Create, Mw: []gin.HandlerFunc{requireAuth}},
		})

		spots := apiGroup.Group("/camping-spots", optionalAuth)
		addRoutes(spots, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Spot.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Spot.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Spot.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Spot.Update, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Spot.Delete, Mw: []gin.HandlerFunc{requireAuth}},
		})

		bookings := apiGroup.Group("/bookings", requireAuth)
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete},
		})

		comments := apiGroup.Group("/comments", requireAuth)
		addRoutes(comments, []route{
			{Method: http.MethodPut, Path: "/:id", Handler: h.Comment.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Comment.Delete},
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
