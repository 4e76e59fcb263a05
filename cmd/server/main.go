package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/auth"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/config"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/database"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/geocode"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/handlers"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/logger"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/middleware"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/notify"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/storage"
	"go.uber.org/zap"
)

var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	store, err := storage.New(cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to create blob storage client", zap.Error(err))
	}

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer)
	sms := notify.NewSMSClient(cfg.Twilio, log)
	email := notify.NewEmailClient(cfg.SMTP, log)
	alerter := notify.NewAlerter(sms, email, log)
	geocoder := geocode.NewClient(cfg.GeocodeURL, log)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := setupRouter(cfg, pool, jwtService, store, sms, alerter, geocoder, log)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.Int("port", cfg.Server.Port), zap.String("version", Version))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

func setupRouter(
	cfg *config.Config,
	pool *pgxpool.Pool,
	jwtService *auth.JWTService,
	store *storage.Store,
	sms *notify.SMSClient,
	alerter *notify.Alerter,
	geocoder *geocode.Client,
	log *zap.Logger,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.WithDB(pool))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := database.Health(c.Request.Context(), pool); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": Version})
	})

	// Public routes
	r.GET("/p/:publicId", handlers.GetPublicProfile)
	r.POST("/api/qr-scan-location", handlers.RecordScanLocation(geocoder, alerter, log))
	r.GET("/api/products", handlers.ListProducts)
	r.POST("/api/auth/register", handlers.Register(jwtService))
	r.POST("/api/auth/login", handlers.Login(jwtService))

	// Authenticated routes
	api := r.Group("/api", middleware.RequireAuth(jwtService))
	{
		api.GET("/guardians/me", handlers.GetCurrentGuardian)
		api.POST("/guardian-phone", handlers.UpdateGuardianPhone)

		api.GET("/individuals", handlers.ListIndividuals)
		api.POST("/individuals", handlers.CreateIndividual(cfg.SiteURL, store))
		api.GET("/individuals/:id", handlers.GetIndividual)
		api.PUT("/individuals/:id", handlers.UpdateIndividual)
		api.DELETE("/individuals/:id", handlers.DeleteIndividual(store, log))
		api.GET("/individuals/:id/qr-url", handlers.GetQrSignedURL(store))

		api.POST("/checkout", handlers.Checkout)

		api.GET("/notifications", handlers.ListNotifications)
		api.PATCH("/notifications/read", handlers.MarkNotificationsRead)
		api.GET("/notifications/latest", handlers.LatestNotification)
	}

	// Admin routes
	admin := r.Group("/api/admin", middleware.RequireAuth(jwtService), middleware.RequireAdmin())
	{
		admin.POST("/broadcast", handlers.AdminBroadcast(sms, log))
		admin.POST("/qr/:id/regenerate", handlers.RegenerateQr(cfg.SiteURL, store))
		admin.POST("/products", handlers.CreateProduct)
		admin.PUT("/products/:id", handlers.UpdateProduct)
		admin.GET("/orders", handlers.ListOrders)
		admin.POST("/orders/:id/status", handlers.UpdateOrderStatus)
	}

	return r
}
