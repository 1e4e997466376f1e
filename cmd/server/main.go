package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campuslink/campuslink-backend/internal/config"
	"github.com/campuslink/campuslink-backend/internal/database"
	"github.com/campuslink/campuslink-backend/internal/handler"
	"github.com/campuslink/campuslink-backend/internal/logger"
	"github.com/campuslink/campuslink-backend/internal/ocr"
	"github.com/campuslink/campuslink-backend/internal/repository"
	"github.com/campuslink/campuslink-backend/internal/router"
	"github.com/campuslink/campuslink-backend/internal/service"
	"github.com/campuslink/campuslink-backend/internal/validator"
	"github.com/campuslink/campuslink-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting CampusLink Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	universityRepo := repository.NewUniversityRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	sectionRepo := repository.NewSectionRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	classmateRepo := repository.NewClassmateRepository(pool)
	chatRepo := repository.NewChatRepository(pool)
	clubRepo := repository.NewClubRepository(pool)

	// ─── Initialize OCR Adapter ────────────────────────────────────────
	// Degrades to "unavailable" when tesseract is missing; photo import
	// then returns an actionable error instead of failing at runtime.
	ocrEngine := ocr.NewTesseractEngine(cfg.OCRLanguage, cfg.OCREnabled)
	ocrAdapter := ocr.NewAdapter(ocrEngine, log)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb, userRepo, universityRepo)
	userService := service.NewUserService(userRepo, universityRepo)
	catalogService := service.NewCatalogService(rdb, userRepo, classRepo, sectionRepo)
	enrollmentService := service.NewEnrollmentService(rdb, enrollmentRepo, classRepo)
	classmateService := service.NewClassmateService(rdb, classmateRepo)
	scheduleService := service.NewScheduleService(ocrAdapter, catalogService, enrollmentService, userRepo)
	chatService := service.NewChatService(rdb, chatRepo)
	clubService := service.NewClubService(clubRepo, userRepo)
	mediaService := service.NewMediaService(cfg)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:      handler.NewAuthHandler(authService, userService),
		User:      handler.NewUserHandler(userService),
		Schedule:  handler.NewScheduleHandler(scheduleService, mediaService),
		Class:     handler.NewClassHandler(catalogService, enrollmentService),
		Classmate: handler.NewClassmateHandler(classmateService),
		Chat:      handler.NewChatHandler(chatService),
		ChatWS:    handler.NewChatWSHandler(rdb, chatService, log, cfg.AllowedOrigins),
		Club:      handler.NewClubHandler(clubService),
		Media:     handler.NewMediaHandler(mediaService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	chatWorker := worker.NewChatWorker(pool, rdb, log)
	classmateWorker := worker.NewClassmateWorker(pool, rdb, log)

	go chatWorker.Start(workerCtx)
	go classmateWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, userRepo, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop background workers and wait for queues to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow workers to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
