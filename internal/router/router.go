package router

import (
	"net/http"
	"time"

	"github.com/campuslink/campuslink-backend/internal/config"
	"github.com/campuslink/campuslink-backend/internal/handler"
	"github.com/campuslink/campuslink-backend/internal/middleware"
	"github.com/campuslink/campuslink-backend/internal/repository"
	"github.com/campuslink/campuslink-backend/internal/response"
	"github.com/campuslink/campuslink-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Schedule  *handler.ScheduleHandler
	Class     *handler.ClassHandler
	Classmate *handler.ClassmateHandler
	Chat      *handler.ChatHandler
	ChatWS    *handler.ChatWSHandler
	Club      *handler.ClubHandler
	Media     *handler.MediaHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	users *repository.UserRepository,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Serve uploaded media files statically with aggressive caching (1 year).
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)
	// Schedule imports are heavier (parsing, OCR), so they get a tighter one.
	importLimiter := middleware.NewRateLimiter(10, time.Minute)

	// ─── 1. Public Group ───────────────────────────────────────────────
	public := router.Group("/api/v1")
	{
		public.GET("/universities", handlers.User.ListUniversities)
	}

	// ─── 2. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)

		// Authenticated profile routes
		auth.POST("/logout", middleware.RequireJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireJWT(authService), handlers.Auth.Me)
	}

	// ─── 3. Onboarding Group (JWT + Single Device) ─────────────────────
	// Schedule import and catalog matching are usable before onboarding
	// completes; they ARE onboarding.
	onboarding := router.Group("/api/v1")
	onboarding.Use(
		middleware.RequireJWT(authService),
		middleware.CheckSingleDeviceSession(authService),
	)
	{
		schedule := onboarding.Group("/schedule")
		schedule.Use(importLimiter.Middleware())
		{
			schedule.POST("/import", handlers.Schedule.ImportFile)
			schedule.POST("/photo", handlers.Schedule.ImportPhoto)
			schedule.POST("/manual", handlers.Schedule.PreviewManual)
			schedule.POST("/confirm", handlers.Schedule.Confirm)
		}

		onboarding.POST("/classes/match", handlers.Class.Match)
		onboarding.POST("/classes/enroll", handlers.Class.Enroll)
		onboarding.GET("/classes/mine", handlers.Class.MyClasses)
		onboarding.GET("/classes/:id", handlers.Class.Get)
		onboarding.DELETE("/classes/:id/enrollment", handlers.Class.Unenroll)

		onboarding.PUT("/users/me", handlers.User.UpdateProfile)
		onboarding.GET("/users/me/university", handlers.User.MyUniversity)
		onboarding.POST("/media/upload", handlers.Media.Upload)
	}

	// ─── 4. Social Group (JWT + Single Device + Onboarded) ─────────────
	social := router.Group("/api/v1")
	social.Use(
		middleware.RequireJWT(authService),
		middleware.CheckSingleDeviceSession(authService),
		middleware.RequireOnboarded(users),
	)
	{
		social.GET("/classes/:id/classmates", handlers.Classmate.ByClass)
		social.GET("/classmates", handlers.Classmate.All)
		social.GET("/users/:id", handlers.User.GetProfile)

		social.GET("/chats", handlers.Chat.Mine)
		social.GET("/chats/:id/messages", handlers.Chat.History)

		social.GET("/clubs", handlers.Club.List)
		social.GET("/clubs/mine", handlers.Club.Mine)
		social.POST("/clubs", handlers.Club.Create)
		social.POST("/clubs/:id/join", handlers.Club.Join)
		social.POST("/clubs/:id/leave", handlers.Club.Leave)
		social.GET("/clubs/:id/posts", handlers.Club.Feed)
		social.POST("/clubs/:id/posts", handlers.Club.Post)
	}

	// ─── 5. WebSocket Group (WS Auth via query token) ──────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireWSAuth(authService))
	{
		ws.GET("/chats/:chat_id/stream", handlers.ChatWS.Stream)
	}

	return router
}
