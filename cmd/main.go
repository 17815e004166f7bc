package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"boardinghouse/internal/bootstrap"
	"boardinghouse/internal/config"
	"boardinghouse/internal/handlers"
	"boardinghouse/internal/jobs/background"
	"boardinghouse/internal/middleware"
	"boardinghouse/internal/repositories"
	"boardinghouse/internal/services"
	"boardinghouse/pkg/database"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load(log)

	graph, err := database.Connect(database.Config{
		URI:         cfg.Neo4jURI,
		Username:    cfg.Neo4jUsername,
		Password:    cfg.Neo4jPassword,
		MaxAttempts: 5,
		RetryDelay:  2 * time.Second,
	}, log)
	if err != nil {
		log.WithError(err).Fatal("could not create graph driver")
	}
	defer graph.Close(context.Background())

	// Repositories
	userRepo := repositories.NewUserRepository(graph)
	roomRepo := repositories.NewRoomRepository(graph)
	bookingRepo := repositories.NewBookingRepository(graph)
	tenantRepo := repositories.NewTenantRepository(graph)
	notificationRepo := repositories.NewNotificationRepository(graph)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	roomSvc := services.NewRoomService(roomRepo)
	bookingSvc := services.NewBookingService(bookingRepo, roomRepo, notificationRepo, log)
	tenantSvc := services.NewTenantService(tenantRepo)
	notificationSvc := services.NewNotificationService(notificationRepo, bookingRepo, roomRepo, log)

	// The server still comes up when the store is unreachable so that
	// /health can report the outage; the monitor logs recovery.
	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := bootstrap.Run(startCtx, cfg, graph, userRepo, roomRepo, log); err != nil {
		log.WithError(err).Warn("bootstrap incomplete, starting in degraded mode")
	}
	cancel()

	monitor, err := background.NewConnectivityMonitor(graph, 30*time.Second, log)
	if err != nil {
		log.WithError(err).Fatal("could not create connectivity monitor")
	}
	monitor.Start()
	defer monitor.Stop()

	// Handlers
	authHandlers := handlers.NewAuthHandlers(authSvc)
	roomHandlers := handlers.NewRoomHandlers(roomSvc)
	bookingHandlers := handlers.NewBookingHandlers(bookingSvc)
	tenantHandlers := handlers.NewTenantHandlers(tenantSvc)
	notificationHandlers := handlers.NewNotificationHandlers(notificationSvc)
	healthHandlers := handlers.NewHealthHandlers(graph)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	e.GET("/health", healthHandlers.HealthCheck)

	auth := middleware.Authenticate(authSvc)
	admin := middleware.RequireAdmin()

	api := e.Group("/api")

	api.POST("/auth/register", authHandlers.Register)
	api.POST("/auth/login", authHandlers.Login)
	api.GET("/auth/me", authHandlers.Me, auth)

	api.GET("/rooms", roomHandlers.List)
	api.GET("/rooms/:id", roomHandlers.Get)
	api.POST("/rooms", roomHandlers.Create, auth, admin)
	api.PUT("/rooms/:id", roomHandlers.Update, auth, admin)
	api.DELETE("/rooms/:id", roomHandlers.Delete, auth, admin)

	api.POST("/bookings", bookingHandlers.Create, auth)
	api.GET("/bookings/my", bookingHandlers.ListMine, auth)
	api.PUT("/bookings/:id", bookingHandlers.Update, auth)
	api.DELETE("/bookings/:id", bookingHandlers.Cancel, auth)

	api.GET("/tenants", tenantHandlers.List, auth, admin)
	api.POST("/tenants", tenantHandlers.Create, auth, admin)

	api.GET("/notifications", notificationHandlers.List, auth)
	api.PUT("/notifications/:id", notificationHandlers.Update, auth, admin)

	if cfg.ServeStatic {
		e.Static("/", cfg.StaticDir)
	}

	log.Infof("listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
