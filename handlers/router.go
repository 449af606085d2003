package handlers

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/dreamjobs/portal/auth"
	"github.com/dreamjobs/portal/config"
	_ "github.com/dreamjobs/portal/docs"
	"github.com/dreamjobs/portal/logger"
	"github.com/dreamjobs/portal/mcp"
	"github.com/dreamjobs/portal/models"
	"github.com/dreamjobs/portal/notify"
	"github.com/dreamjobs/portal/payments"
	"github.com/dreamjobs/portal/ratelimit"
	"github.com/dreamjobs/portal/storage"
	"github.com/dreamjobs/portal/tools"
	"github.com/dreamjobs/portal/utils"
)

// Deps are the collaborators the HTTP layer is built from
type Deps struct {
	Config   *config.Config
	Store    storage.Repository
	Resumes  storage.ResumeStore
	Gateway  payments.Gateway
	Notifier notify.Notifier
	Mailer   notify.Mailer
	JWT      *auth.JWTService
	Google   auth.GoogleVerifier
	Tools    *tools.ToolRegistry
	Logger   *zap.Logger
	Version  string

	// Now defaults to time.Now
	Now func() time.Time
}

// NewRouter builds the gin engine with every route registered
func NewRouter(d Deps) *gin.Engine {
	log := logger.OrNop(d.Logger)
	now := d.Now
	if now == nil {
		now = time.Now
	}
	registry := d.Tools
	if registry == nil {
		registry = tools.NewDefaultRegistry()
	}
	cfg := d.Config

	authHandler := NewAuthHandler(d.Store, d.JWT, d.Google, log)
	authHandler.now = now
	candidateHandler := NewCandidateHandler(d.Store, d.Resumes, utils.NewDocumentExtractor(), cfg.ResumeMaxBytes, log)
	employerHandler := NewEmployerHandler(d.Store, d.Resumes, d.Mailer, log)
	jobHandler := NewJobHandler(d.Store, d.Notifier, log)
	paymentHandler := NewPaymentHandler(d.Store, d.Gateway, d.Notifier, PaymentSettings{
		AmountMinor: cfg.PriceMinor,
		Currency:    cfg.PriceCurrency,
		Access:      time.Duration(cfg.AccessHours) * time.Hour,
	}, log)
	paymentHandler.now = now
	matchHandler := NewMatchHandler(registry, log)
	systemHandler := NewSystemHandler(d.Store, d.Version)
	mcpServer := mcp.NewServer(registry, "dreamjobs-portal", d.Version, log)

	throttle := ratelimit.NewKeyedLimiter(cfg.LoginRatePerMinute, cfg.LoginBurst)
	requireAuth := auth.AuthMiddleware(d.JWT)
	premium := RequirePremium(d.Store, now, log)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinMiddleware(log))
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", systemHandler.HealthCheck)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", throttle.Middleware(), authHandler.Register)
			authGroup.POST("/login", throttle.Middleware(), authHandler.Login)
			authGroup.POST("/google", authHandler.GoogleLogin)
			authGroup.GET("/profile", requireAuth, authHandler.GetProfile)
			authGroup.POST("/refresh", requireAuth, authHandler.Refresh)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.List)
			jobs.GET("/:id", jobHandler.Get)
			jobs.POST("/:id/apply", requireAuth, auth.RequireRole(models.RoleCandidate), jobHandler.Apply)
		}

		candidate := api.Group("/candidate", requireAuth, auth.RequireRole(models.RoleCandidate))
		{
			candidate.GET("/profile", candidateHandler.GetProfile)
			candidate.PUT("/profile", candidateHandler.UpdateProfile)
			candidate.POST("/resume", candidateHandler.UploadResume)
			candidate.GET("/resume", candidateHandler.DownloadResume)
			candidate.GET("/applications", candidateHandler.Applications)
			candidate.GET("/recommended", premium, candidateHandler.Recommended)
		}

		employer := api.Group("/employer", requireAuth, auth.RequireRole(models.RoleEmployer))
		{
			employer.POST("/jobs", employerHandler.CreateJob)
			employer.GET("/jobs", employerHandler.ListJobs)
			employer.GET("/applicants", employerHandler.Applicants)
			employer.GET("/resumes", premium, employerHandler.SearchResumes)
			employer.GET("/resumes/:userId", premium, employerHandler.DownloadResume)
			employer.GET("/recommended", premium, employerHandler.Recommended)
			employer.POST("/candidates/:userId/contact", premium, employerHandler.Contact)
		}

		pay := api.Group("/payments", requireAuth)
		{
			pay.POST("/orders", paymentHandler.CreateOrder)
			pay.POST("/capture", paymentHandler.Capture)
			pay.GET("", paymentHandler.List)
		}

		api.POST("/match/rank", matchHandler.Rank)

		// Tools introspection endpoint
		api.GET("/tools", matchHandler.GetTools)

		// MCP endpoints for external AI agents
		mcpServer.RegisterRoutes(api)
	}

	return router
}

// corsConfig allows the comma separated origins, or any origin without
// credentials when none are configured.
func corsConfig(origins string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowCredentials = true
	}
	return cfg
}
