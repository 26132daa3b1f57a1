package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"canteen-reservation/internal/domain/user"
	"canteen-reservation/internal/handler/api"
	reqdto "canteen-reservation/internal/handler/dto/request"
	"canteen-reservation/internal/handler/middleware"
	"canteen-reservation/internal/pkg/config"
	"canteen-reservation/internal/pkg/errs"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Menu        *api.MenuHandler
	Settings    *api.SettingsHandler
	Calendar    *api.CalendarHandler
	Audit       *api.AuditHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := registerValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin validator engine is not go-playground/validator")
	}
	return reqdto.RegisterValidators(v)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staffOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleGestionnaire)}
	adminOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/summary", Handler: h.Reservation.Summary, Mw: staffOnly},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Reservation.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Cancel},
			})
		}

		menus := apiGroup.Group("/menus")
		menus.Use(authMiddleware.RequireAuth())
		{
			addRoutes(menus, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Menu.List},
				{Method: http.MethodGet, Path: "/:date", Handler: h.Menu.GetForDate},
				{Method: http.MethodPost, Path: "", Handler: h.Menu.Create, Mw: staffOnly},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Menu.Update, Mw: staffOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Menu.Delete, Mw: staffOnly},
			})
		}

		settings := apiGroup.Group("/settings")
		settings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(settings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Settings.Get},
				{Method: http.MethodPatch, Path: "", Handler: h.Settings.Update, Mw: adminOnly},
			})
		}

		calendar := apiGroup.Group("/calendar")
		calendar.Use(authMiddleware.RequireAuth())
		{
			addRoutes(calendar, []route{
				{Method: http.MethodGet, Path: "/deadline", Handler: h.Calendar.Deadline},
				{Method: http.MethodGet, Path: "/weeks", Handler: h.Calendar.Weeks},
			})
		}

		audit := apiGroup.Group("/audit-logs")
		audit.Use(authMiddleware.RequireAuth())
		{
			addRoutes(audit, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Audit.List, Mw: adminOnly},
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
