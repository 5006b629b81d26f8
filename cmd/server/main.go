package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"healthease/docs"

	"github.com/labstack/echo/v4"

	"healthease/internal/auth"
	"healthease/internal/backend"
	"healthease/internal/cache"
	"healthease/internal/config"
	"healthease/internal/handler"
	"healthease/internal/router"
	"healthease/internal/service"
	"healthease/internal/session"
	"healthease/internal/view"
)

// @title HealthEase API
// @version 1.0
// @description JSON surface of the HealthEase web client: session, doctors, appointments and dashboard.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer

	var sessionCache session.Cache
	switch cfg.SessionStore {
	case "memory":
		log.Println("SESSION_STORE=memory, sessions will not survive a restart")
		sessionCache = cache.NewMemory()
	default:
		redisClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(ctx); err != nil {
			log.Printf("Warning: redis at %s not reachable: %v", cfg.RedisAddr, err)
		}
		cancel()
		sessionCache = redisClient
	}

	// Initialize session components
	tokens := auth.NewTokenService(cfg.JWTSecret)
	store := session.NewStore(sessionCache, tokens, cfg.SessionTTL)
	api := backend.New(cfg.APIBaseURL, cfg.APITimeout)

	// Initialize services
	authService := service.NewAuthService(api, store)
	catalogService := service.NewCatalogService(api)
	bookingService := service.NewBookingService(api, store)
	dashboardService := service.NewDashboardService(api, store)
	seedService := service.NewSeedService(api)

	// Register routes
	router.Register(e, cfg, router.Handlers{
		Pages:   handler.NewPageHandler(store, catalogService, bookingService, dashboardService),
		Auth:    handler.NewAuthHandler(store, authService, bookingService),
		Admin:   handler.NewAdminHandler(store, authService, bookingService),
		Booking: handler.NewBookingHandler(store, bookingService),
		API:     handler.NewAPIHandler(authService, catalogService, bookingService, dashboardService),
		Seed:    handler.NewSeedHandler(authService, seedService),
	})

	// Log swagger full path
	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
		docs.SwaggerInfo.Host = host
		if strings.HasPrefix(cfg.SwaggerHost, "http") {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	}
	log.Printf("Backend API: %s", cfg.APIBaseURL)
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
