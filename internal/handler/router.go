package handler

import (
	"net/http"

	"collective-lifecycle/internal/domain/user"
	"collective-lifecycle/internal/handler/api"
	"collective-lifecycle/internal/handler/middleware"
	"collective-lifecycle/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Offer    *api.OfferHandler
	Template *api.TemplateHandler
	Booking  *api.BookingHandler
}

type Middlewares struct {
	Logger       *middleware.Logger
	Auth         *middleware.AuthMiddleware
	ProviderAuth *middleware.ProviderAuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw.Logger)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(mw.Auth.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		pro := apiGroup.Group("/collective")
		pro.Use(mw.Auth.RequireAuth(), mw.Auth.RequireRole(user.RolePro, user.RoleAdmin))
		{
			addRoutes(pro, []route{
				{Method: http.MethodGet, Path: "/offers", Handler: h.Offer.List},
				{Method: http.MethodPatch, Path: "/offers/archive", Handler: h.Offer.Archive},
				{Method: http.MethodGet, Path: "/offers/:id", Handler: h.Offer.Get},
				{Method: http.MethodPatch, Path: "/offers/:id/publish", Handler: h.Offer.Publish},
				{Method: http.MethodPatch, Path: "/offers/:id/dates", Handler: h.Offer.EditDates},
				{Method: http.MethodPost, Path: "/offers/:id/cancel", Handler: h.Offer.Cancel},
				{Method: http.MethodPatch, Path: "/templates/archive", Handler: h.Template.Archive},
				{Method: http.MethodGet, Path: "/templates/:id", Handler: h.Template.Get},
				{Method: http.MethodPatch, Path: "/templates/:id/publish", Handler: h.Template.Publish},
				{Method: http.MethodPatch, Path: "/templates/:id/active", Handler: h.Template.SetActive},
			})
		}

		adage := apiGroup.Group("/adage")
		adage.Use(mw.Auth.RequireAuth(), mw.Auth.RequireRole(user.RoleRedactor))
		{
			addRoutes(adage, []route{
				{Method: http.MethodPost, Path: "/stocks/:id/bookings", Handler: h.Booking.Book, Mw: []gin.HandlerFunc{middleware.ValidateIdempotencyKey()}},
				{Method: http.MethodPost, Path: "/bookings/:id/confirm", Handler: h.Booking.Confirm},
			})
		}
	}

	public := engine.Group("/public/collective")
	public.Use(mw.ProviderAuth.RequireAPIKey())
	{
		addRoutes(public, []route{
			{Method: http.MethodGet, Path: "/offers/:id", Handler: h.Offer.Get},
			{Method: http.MethodPost, Path: "/offers/:id/cancel", Handler: h.Offer.Cancel},
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
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		default:
			g.Handle(r.Method, r.Path, h)
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
