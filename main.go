package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vjay-git/shivashray/config"
	"github.com/vjay-git/shivashray/controllers"
	"github.com/vjay-git/shivashray/routes"
	"github.com/vjay-git/shivashray/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot sign tokens.")
	}
	gin.SetMode(cfg.GinMode)

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	authService := services.NewAuthService(db)
	availabilityService := services.NewAvailabilityService(db)
	bookingService := services.NewBookingService(db, logger)
	roomService := services.NewRoomService(db)
	serviceCatalog := services.NewServiceCatalog(db)

	// Initialize controllers
	authController := controllers.NewAuthController(authService, cfg.JWTSecret)
	roomController := controllers.NewRoomController(roomService, availabilityService)
	bookingController := controllers.NewBookingController(bookingService)
	serviceController := controllers.NewServiceController(serviceCatalog)
	adminController := controllers.NewAdminController(roomService, bookingService, serviceCatalog)

	router := routes.SetupRouter(cfg, logger,
		authController, roomController, bookingController, serviceController, adminController)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
