package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mahawer/mahawer-api/internal/api/handlers"
	"github.com/mahawer/mahawer-api/internal/api/middleware"
	"github.com/mahawer/mahawer-api/internal/cache"
	"github.com/mahawer/mahawer-api/internal/config"
	"github.com/mahawer/mahawer-api/internal/health"
	"github.com/mahawer/mahawer-api/internal/metrics"
	repository "github.com/mahawer/mahawer-api/internal/repositories"
	service "github.com/mahawer/mahawer-api/internal/services"
	"github.com/mahawer/mahawer-api/internal/storage"
	"github.com/mahawer/mahawer-api/internal/telemetry"
	"github.com/mahawer/mahawer-api/pkg/sendgrid"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		slog.Error("Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	defer redisClient.Close()

	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)
	redisCache := cache.NewRedisCache(redisClient, &cfg.CacheConfig)

	// Upload storage
	store, err := storage.NewLocal(cfg.Upload.Dir, cfg.Upload.BaseURL)
	if err != nil {
		slog.Error("Error preparing upload storage", "error", err.Error())
		os.Exit(1)
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	userService := service.NewUserService(repos.User, rateLimitRepo, jwtKey)
	authHandler := handlers.NewAuthHandler(userService)
	categoryService := service.NewCategoryService(repos.Category, redisCache, cfg.CacheConfig.CatalogueTTL)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productService := service.NewProductService(repos.Product)
	productHandler := handlers.NewProductHandler(productService)
	inquiryService := service.NewInquiryService(repos.Inquiry, rateLimitRepo, emailService, cfg.SendGrid.AdminEmail)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	contactService := service.NewContactService(repos.Contact, rateLimitRepo, emailService, cfg.SendGrid.AdminEmail)
	contactHandler := handlers.NewContactHandler(contactService)
	sliderService := service.NewSliderService(repos.Slider, redisCache, cfg.CacheConfig.CatalogueTTL)
	sliderHandler := handlers.NewSliderHandler(sliderService)
	statsService := service.NewStatsService(repos.Product, repos.Inquiry, repos.Category)
	statsHandler := handlers.NewStatsHandler(statsService)
	uploadHandler := handlers.NewUploadHandler(store, cfg.Upload)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{DB: repos.DB, RedisClient: redisClient})
	if err != nil {
		slog.Error("Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("Service initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	// Public surface
	routerMux.HandleFunc("GET /api/categories", categoryHandler.ListPublic())
	routerMux.HandleFunc("GET /api/products", productHandler.ListPublic())
	routerMux.HandleFunc("GET /api/products/{id}", productHandler.GetPublic())
	routerMux.HandleFunc("POST /api/inquiries", inquiryHandler.Create())
	routerMux.HandleFunc("POST /api/contact", contactHandler.Create())
	routerMux.HandleFunc("GET /api/sliders", sliderHandler.ListPublic())

	// Admin surface
	routerMux.HandleFunc("POST /api/admin/login", authHandler.Login())
	routerMux.HandleFunc("GET /api/admin/categories", authMiddleware.Authenticate(categoryHandler.ListAdmin()))
	routerMux.HandleFunc("POST /api/admin/categories", authMiddleware.Authenticate(categoryHandler.Create()))
	routerMux.HandleFunc("PATCH /api/admin/categories/{id}", authMiddleware.Authenticate(categoryHandler.Update()))
	routerMux.HandleFunc("DELETE /api/admin/categories/{id}", authMiddleware.Authenticate(categoryHandler.Delete()))
	routerMux.HandleFunc("GET /api/admin/products", authMiddleware.Authenticate(productHandler.ListAdmin()))
	routerMux.HandleFunc("POST /api/admin/products", authMiddleware.Authenticate(productHandler.Create()))
	routerMux.HandleFunc("GET /api/admin/products/{id}", authMiddleware.Authenticate(productHandler.GetAdmin()))
	routerMux.HandleFunc("PATCH /api/admin/products/{id}", authMiddleware.Authenticate(productHandler.Update()))
	routerMux.HandleFunc("DELETE /api/admin/products/{id}", authMiddleware.Authenticate(productHandler.Delete()))
	routerMux.HandleFunc("GET /api/admin/inquiries", authMiddleware.Authenticate(inquiryHandler.List()))
	routerMux.HandleFunc("PATCH /api/admin/inquiries/{id}", authMiddleware.Authenticate(inquiryHandler.UpdateStatus()))
	routerMux.HandleFunc("GET /api/admin/contacts", authMiddleware.Authenticate(contactHandler.List()))
	routerMux.HandleFunc("PATCH /api/admin/contacts/{id}", authMiddleware.Authenticate(contactHandler.Update()))
	routerMux.HandleFunc("GET /api/admin/sliders", authMiddleware.Authenticate(sliderHandler.ListAdmin()))
	routerMux.HandleFunc("POST /api/admin/sliders", authMiddleware.Authenticate(sliderHandler.Create()))
	routerMux.HandleFunc("GET /api/admin/sliders/{id}", authMiddleware.Authenticate(sliderHandler.Get()))
	routerMux.HandleFunc("PUT /api/admin/sliders/{id}", authMiddleware.Authenticate(sliderHandler.Update()))
	routerMux.HandleFunc("DELETE /api/admin/sliders/{id}", authMiddleware.Authenticate(sliderHandler.Delete()))
	routerMux.HandleFunc("GET /api/admin/stats", authMiddleware.Authenticate(statsHandler.Dashboard()))
	routerMux.HandleFunc("POST /api/upload", authMiddleware.Authenticate(uploadHandler.Upload()))

	// Operational endpoints and uploaded files
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET "+strings.TrimRight(cfg.Upload.BaseURL, "/")+"/",
		http.StripPrefix(strings.TrimRight(cfg.Upload.BaseURL, "/")+"/", http.FileServer(http.Dir(cfg.Upload.Dir))))

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.Cors.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = corsMiddleware.Handler(handler)
	handler = otelhttp.NewHandler(handler, "mahawer-api")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("Tracing shutdown encountered an issue", slog.String("error", err.Error()))
	}

}
