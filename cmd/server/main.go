package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rlwai/shop-api/internal/config"
	"github.com/rlwai/shop-api/internal/database"
	"github.com/rlwai/shop-api/internal/handler"
	"github.com/rlwai/shop-api/internal/jobs"
	"github.com/rlwai/shop-api/internal/middleware"
	"github.com/rlwai/shop-api/internal/redis"
	"github.com/rlwai/shop-api/internal/repository"
	"github.com/rlwai/shop-api/internal/service"
	"github.com/rlwai/shop-api/internal/storage"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	setLogLevel(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), config.DBPingTimeout)
	if err := db.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}
	cancel()
	log.Info().Msg("database connected")

	redisClient, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()

	files, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.UploadDir).Msg("failed to prepare upload directory")
	}

	customerRepo := repository.NewCustomerRepository(db.DB)
	catalogRepo := repository.NewCatalogRepository(db.DB)
	productRepo := repository.NewProductRepository(db.DB)
	cartRepo := repository.NewCartRepository(db.DB)
	orderRepo := repository.NewOrderRepository(db.DB)
	imageRepo := repository.NewImageRepository(db.DB)

	sessions := service.NewMemorySessionStore()
	images := service.NewImageResolver(imageRepo, files)

	authService := service.NewAuthService(customerRepo, sessions)
	catalogService := service.NewCatalogService(catalogRepo)
	productService := service.NewProductService(productRepo, images, cfg.ImageURL)
	cartService := service.NewCartService(cartRepo, images, cfg.ImageURL)
	orderService := service.NewOrderService(db, orderRepo, productRepo)

	var limiter middleware.Limiter
	if redisClient != nil {
		limiter = middleware.NewRedisRateLimiter(redisClient.Client)
		log.Info().Msg("redis connected, using shared rate limiter")
	} else {
		limiter = middleware.NewRateLimiter()
	}

	isProduction := os.Getenv("RAILWAY_ENVIRONMENT") == "production"
	authMiddleware := middleware.NewAuthMiddleware(sessions)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(limiter, cfg.RateLimitPerMin)
	loginRateLimiter := middleware.NewLoginRateLimiter()
	bodyLimitMiddleware := middleware.NewBodyLimitMiddleware(0)
	securityHeadersMiddleware := middleware.NewSecurityHeadersMiddleware(isProduction)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))
	r.Use(bodyLimitMiddleware.Handler)
	r.Use(securityHeadersMiddleware.Handler)

	r.Get("/health", handler.NewHealthHandler(db).ServeHTTP)
	r.Get("/images/*", handler.NewImageFileHandler(files.Dir()).ServeHTTP)
	r.With(loginRateLimiter.Handler).Post("/login", authHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Handler)
		r.Use(rateLimitMiddleware.Handler)

		r.Get("/languages", catalogHandler.Languages)
		r.Get("/currencies", catalogHandler.Currencies)
		r.Get("/categories", catalogHandler.Categories)
		r.Get("/products", productHandler.List)
		r.Get("/products/{ref}", productHandler.Get)
		r.Get("/cart", cartHandler.Get)
		r.Mount("/orders", orderHandler.Routes())
	})

	cleanupJob := jobs.NewCleanupJob(sessions, config.CleanupJobInterval)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
