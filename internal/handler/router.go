package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"carhaul-portal/internal/domain/user"
	"carhaul-portal/internal/handler/api"
	"carhaul-portal/internal/handler/middleware"
	"carhaul-portal/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Wizard   *api.WizardHandler
	Payment  *api.PaymentHandler
	Lookup   *api.LookupHandler
	Tracking *api.TrackingHandler
	Profile  *api.ProfileHandler
	Admin    *api.AdminHandler
	Contact  *api.ContactHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMw *middleware.AuthMiddleware, visitorMw *middleware.VisitorMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMw, visitorMw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMw *middleware.AuthMiddleware, visitorMw *middleware.VisitorMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		auth.Use(authMw.OptionalAuth(), visitorMw.EnsureVisitor())
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/otp/confirmation", Handler: h.Auth.ConfirmOTP},
				{Method: http.MethodPost, Path: "/forgot-password", Handler: h.Auth.ForgotPassword},
				{Method: http.MethodPost, Path: "/reset-password", Handler: h.Auth.ResetPassword},
				{Method: http.MethodPost, Path: "/resend-token", Handler: h.Auth.ResendToken},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{authMw.RequireAuth()}},
			})
		}

		// The quote-to-reservation flow starts anonymous and finishes
		// authenticated; the flow key middleware bridges the two.
		wizard := apiGroup.Group("/wizard")
		wizard.Use(authMw.OptionalAuth(), visitorMw.EnsureVisitor())
		{
			addRoutes(wizard, []route{
				{Method: http.MethodGet, Path: "/state", Handler: h.Wizard.State},
				{Method: http.MethodPost, Path: "/quote", Handler: h.Wizard.RequestQuote},
				{Method: http.MethodPost, Path: "/quote/retry", Handler: h.Wizard.RetryQuote},
				{Method: http.MethodPut, Path: "/draft", Handler: h.Wizard.SaveDraft},
				{Method: http.MethodPost, Path: "/handoff", Handler: h.Wizard.MarkHandoff},
				{Method: http.MethodPost, Path: "/secure", Handler: h.Wizard.Secure, Mw: []gin.HandlerFunc{authMw.RequireAuth()}},
				{Method: http.MethodPost, Path: "/protection", Handler: h.Wizard.SelectProtection, Mw: []gin.HandlerFunc{authMw.RequireAuth()}},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMw.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Payment.StartCheckout},
				{Method: http.MethodGet, Path: "/status", Handler: h.Payment.Status},
				{Method: http.MethodPost, Path: "/confirm", Handler: h.Payment.Confirm},
			})
		}

		lookup := apiGroup.Group("/lookup")
		lookup.Use(authMw.OptionalAuth(), visitorMw.EnsureVisitor())
		{
			addRoutes(lookup, []route{
				{Method: http.MethodGet, Path: "/brands", Handler: h.Lookup.Brands},
				{Method: http.MethodGet, Path: "/brands/:brand/models", Handler: h.Lookup.Models},
				{Method: http.MethodGet, Path: "/suggest", Handler: h.Lookup.Suggest},
				{Method: http.MethodGet, Path: "/directions", Handler: h.Lookup.Directions},
			})
		}

		tracking := apiGroup.Group("/tracking")
		tracking.Use(authMw.RequireAuth())
		{
			addRoutes(tracking, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Tracking.Status},
			})
		}

		profile := apiGroup.Group("/profile")
		profile.Use(authMw.RequireAuth())
		{
			addRoutes(profile, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Profile.Dashboard},
				{Method: http.MethodPatch, Path: "", Handler: h.Profile.Update},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMw.RequireAuth(), authMw.RequireRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPatch, Path: "/progress", Handler: h.Admin.UpdateProgress},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/contact", Handler: h.Contact.Send},
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
