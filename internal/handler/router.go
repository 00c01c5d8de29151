package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"zavvi-web/internal/handler/api"
	"zavvi-web/internal/handler/middleware"
	"zavvi-web/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Gate     *api.GateHandler
	Location *api.LocationHandler
	Auth     *api.AuthHandler
	Catalog  *api.CatalogHandler
	Claim    *api.ClaimHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, sessionMiddleware *middleware.SessionMiddleware, gate middleware.GateReader) {
	setupMiddleware(engine, cfg, logger, sessionMiddleware)
	setupRoutes(engine, h, sessionMiddleware, gate)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, sessionMiddleware *middleware.SessionMiddleware) {
	slogger := logger.GetSlogLogger()
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(sessionMiddleware.Attach())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, sessionMiddleware *middleware.SessionMiddleware, gate middleware.GateReader) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/gate"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Gate.Get},
			{Method: http.MethodPost, Path: "/retry", Handler: h.Gate.Retry},
			{Method: http.MethodPost, Path: "/select", Handler: h.Gate.Select},
			{Method: http.MethodPost, Path: "/dismiss", Handler: h.Gate.Dismiss},
		})

		addRoutes(apiGroup.Group("/location"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Location.Get},
			{Method: http.MethodPut, Path: "", Handler: h.Location.Put},
			{Method: http.MethodDelete, Path: "", Handler: h.Location.Delete},
		})

		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/otp", Handler: h.Auth.SendOTP},
			{Method: http.MethodPost, Path: "/verify", Handler: h.Auth.VerifyOTP},
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			{Method: http.MethodPatch, Path: "/me", Handler: h.Auth.UpdateProfile, Mw: []gin.HandlerFunc{sessionMiddleware.RequireLogin()}},
			{Method: http.MethodGet, Path: "/redirect", Handler: h.Auth.Redirect},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodDelete, Path: "/cache", Handler: h.Catalog.Invalidate},
		})

		protected := apiGroup.Group("")
		protected.Use(middleware.RequireLocation(gate))
		{
			addRoutes(protected, []route{
				{Method: http.MethodGet, Path: "/home", Handler: h.Catalog.Home},
				{Method: http.MethodGet, Path: "/categories", Handler: h.Catalog.Categories},
				{Method: http.MethodGet, Path: "/shops", Handler: h.Catalog.Shops},
				{Method: http.MethodGet, Path: "/shops/:id", Handler: h.Catalog.Shop},
				{Method: http.MethodGet, Path: "/shops/:id/deals", Handler: h.Catalog.Deals},
				{Method: http.MethodPost, Path: "/shops/:id/prefetch", Handler: h.Catalog.Prefetch},
				{Method: http.MethodPost, Path: "/claims", Handler: h.Claim.Claim},
				{Method: http.MethodGet, Path: "/claims/current", Handler: h.Claim.Current},
				{Method: http.MethodGet, Path: "/claims/current/qr.png", Handler: h.Claim.QR},
				{Method: http.MethodDelete, Path: "/claims/current", Handler: h.Claim.Cancel},
			})
		}
	}

	slog.Debug("Routes registered", slog.Int("count", len(engine.Routes())))
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
