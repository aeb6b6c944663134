package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"losmecanics_booking/internal/config"
	"losmecanics_booking/internal/handler"
	"losmecanics_booking/internal/middleware"
	"losmecanics_booking/internal/repository"
	"losmecanics_booking/internal/service"
	"losmecanics_booking/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpHours)

	// --- Initialize Repositories ---
	appointmentRepo := repository.NewMemoryAppointmentRepository()
	if cfg.SeedFixtures {
		if err := appointmentRepo.Seed(context.Background(), repository.SeedFixtures()); err != nil {
			log.Fatalf("Failed to seed fixture appointments: %v", err)
		}
		log.Println("Seeded fixture appointments")
	}

	// --- Initialize Services ---
	authService := service.NewAuthService(service.AllowAllVerifier{}, jwtUtil, cfg.AdminEmail)
	appointmentService := service.NewAppointmentService(appointmentRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	viewHandler := handler.NewViewHandler(appointmentService)

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()

	// Simple CORS middleware (allow all for development)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	optionalAuthMW := middleware.OptionalJWTAuthMiddleware(jwtUtil)
	adminRoleMW := middleware.AdminMiddleware()
	authRateLimitMW := middleware.RateLimit(middleware.NewRateLimiter(5, 10))

	// --- Register Routes ---
	apiGroup := router.Group("/api/v1")
	authHandler.RegisterAuthRoutes(apiGroup, authRateLimitMW)
	appointmentHandler.RegisterAppointmentRoutes(apiGroup, jwtAuthMW, adminRoleMW)
	viewHandler.RegisterViewRoutes(apiGroup, optionalAuthMW)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
