package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/handler/api"
	"commission-tracker/internal/handler/middleware"
	"commission-tracker/internal/pkg/config"
	"commission-tracker/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth       *api.AuthHandler
	Purchase   *api.PurchaseHandler
	Payment    *api.PaymentHandler
	Vendor     *api.VendorHandler
	Technician *api.TechnicianHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/catalog", Handler: h.Purchase.Catalog},
		})

		purchase := apiGroup.Group("/purchase")
		purchase.Use(limiter.Middleware())
		{
			addRoutes(purchase, []route{
				{Method: http.MethodGet, Path: "/slots", Handler: h.Purchase.Slots},
				{Method: http.MethodPost, Path: "/flows", Handler: h.Purchase.Start},
				{Method: http.MethodGet, Path: "/flows/:id", Handler: h.Purchase.Get},
				{Method: http.MethodPost, Path: "/flows/:id/service", Handler: h.Purchase.SelectService},
				{Method: http.MethodPost, Path: "/flows/:id/info", Handler: h.Purchase.SubmitInfo},
				{Method: http.MethodPost, Path: "/flows/:id/payment", Handler: h.Purchase.InitiatePayment},
				{Method: http.MethodPost, Path: "/flows/:id/payment/return", Handler: h.Purchase.ResumeAfterPayment},
				{Method: http.MethodPost, Path: "/flows/:id/payment/cancel", Handler: h.Purchase.CancelPayment},
				{Method: http.MethodPost, Path: "/flows/:id/appointment", Handler: h.Purchase.SubmitAppointment},
			})
		}

		addRoutes(apiGroup.Group("/payments"), []route{
			{Method: http.MethodPost, Path: "/webhook", Handler: h.Payment.Webhook, Mw: []gin.HandlerFunc{limiter.Middleware()}},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{limiter.Middleware()}},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{limiter.Middleware()}},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		vendor := apiGroup.Group("/vendor")
		vendor.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleVendor))
		{
			addRoutes(vendor, []route{
				{Method: http.MethodGet, Path: "/serials", Handler: h.Vendor.ListSerials},
				{Method: http.MethodPost, Path: "/serials", Handler: h.Vendor.CreateSerial},
				{Method: http.MethodGet, Path: "/clients", Handler: h.Vendor.ListClients},
			})
		}

		technician := apiGroup.Group("/technician")
		technician.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleTechnician))
		{
			addRoutes(technician, []route{
				{Method: http.MethodGet, Path: "/vendors", Handler: h.Technician.ListVendors},
				{Method: http.MethodPatch, Path: "/vendors/:id", Handler: h.Technician.UpdateVendor},
				{Method: http.MethodPut, Path: "/vendors/:id/active", Handler: h.Technician.SetVendorActive},
				{Method: http.MethodDelete, Path: "/vendors/:id", Handler: h.Technician.DeleteVendor},
				{Method: http.MethodGet, Path: "/clients", Handler: h.Technician.ListClients},
				{Method: http.MethodPatch, Path: "/purchases/:id/appointment-status", Handler: h.Technician.UpdateAppointmentStatus},
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
