package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"courtbook/internal/domain/user"
	"courtbook/internal/handler/api"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	User     *api.UserHandler
	Court    *api.CourtHandler
	TimeSlot *api.TimeSlotHandler
	Booking  *api.BookingHandler
	Pricing  *api.PricingHandler
	Stats    *api.StatsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	vendorUp := authMiddleware.RequireRoleAtLeast(user.RoleVendor)
	adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.User.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: h.User.List, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.User.Get, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.User.Update},
				{Method: http.MethodPost, Path: "/:id/block", Handler: h.User.Block, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPost, Path: "/:id/unblock", Handler: h.User.Unblock, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.User.Delete, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		courts := apiGroup.Group("/courts")
		{
			// Reads are public; a token only widens what staff see.
			courtReads := courts.Group("")
			courtReads.Use(authMiddleware.OptionalAuth())
			addRoutes(courtReads, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Court.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Court.Get},
				{Method: http.MethodGet, Path: "/:id/time-slots", Handler: h.TimeSlot.ListByCourt},
				{Method: http.MethodGet, Path: "/:id/quote", Handler: h.TimeSlot.Quote},
			})

			courtWrites := courts.Group("")
			courtWrites.Use(authMiddleware.RequireAuth())
			addRoutes(courtWrites, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Court.Create, Mw: []gin.HandlerFunc{vendorUp}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Court.Update, Mw: []gin.HandlerFunc{vendorUp}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Court.Delete, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodGet, Path: "/:id/pricing-rules", Handler: h.Pricing.List, Mw: []gin.HandlerFunc{vendorUp}},
				{Method: http.MethodPut, Path: "/:id/pricing-rules", Handler: h.Pricing.Upsert, Mw: []gin.HandlerFunc{vendorUp}},
				{Method: http.MethodPut, Path: "/:id/pricing-rules/batch", Handler: h.Pricing.UpsertBatch, Mw: []gin.HandlerFunc{vendorUp}},
			})
		}

		slots := apiGroup.Group("/time-slots")
		{
			slotReads := slots.Group("")
			slotReads.Use(authMiddleware.OptionalAuth())
			addRoutes(slotReads, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.TimeSlot.Get},
			})

			slotWrites := slots.Group("")
			slotWrites.Use(authMiddleware.RequireAuth())
			addRoutes(slotWrites, []route{
				// The range view joins booking owners, so it stays staff-only.
				{Method: http.MethodGet, Path: "/range", Handler: h.TimeSlot.Range, Mw: []gin.HandlerFunc{vendorUp}},
				{Method: http.MethodPost, Path: "", Handler: h.TimeSlot.Create, Mw: []gin.HandlerFunc{vendorUp}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.TimeSlot.Update, Mw: []gin.HandlerFunc{vendorUp}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.TimeSlot.Delete, Mw: []gin.HandlerFunc{vendorUp}},
			})
		}

		pricingRules := apiGroup.Group("/pricing-rules")
		pricingRules.Use(authMiddleware.RequireAuth())
		{
			addRoutes(pricingRules, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Pricing.Delete, Mw: []gin.HandlerFunc{vendorUp}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.Confirm, Mw: []gin.HandlerFunc{vendorUp}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel},
			})
		}

		stats := apiGroup.Group("/stats")
		stats.Use(authMiddleware.RequireAuth())
		{
			addRoutes(stats, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Stats.BookingStats, Mw: []gin.HandlerFunc{vendorUp}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/stats", Handler: h.Stats.AdminStats, Mw: []gin.HandlerFunc{adminOnly}},
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
