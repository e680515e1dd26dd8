package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"bookstore/database"
	"bookstore/internal/cache"
	"bookstore/internal/config"
	"bookstore/internal/httpapi/handler"
	"bookstore/internal/httpapi/middleware"
	"bookstore/internal/httpapi/repository"
	"bookstore/internal/httpapi/service"
	"bookstore/internal/mail"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// redis is optional; without it the catalog listing just skips the cache
	var bookCache *cache.BookCache
	if cfg.RedisURL != "" {
		bookCache, err = cache.NewBookCache(cfg.RedisURL, time.Duration(cfg.CacheTTL)*time.Second)
		if err != nil {
			logger.Warn("redis unavailable, catalog cache disabled", "error", err)
			bookCache = nil
		}
	}

	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	// repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	authorRepo := repository.NewAuthorRepository(db)
	bookRepo := repository.NewBookRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	tradeRepo := repository.NewTradeRepository(db)

	// services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	catalogService := service.NewCatalogService(bookRepo, authorRepo, bookCache, logger)
	searchService := service.NewSearchService(bookRepo)
	tradeService := service.NewTradeService(tradeRepo, walletRepo)
	walletService := service.NewWalletService(walletRepo)
	dutyService := service.NewDutyService(tradeRepo)
	emailService := service.NewEmailService(userRepo, mailer, logger)

	// handlers
	authHandler := handler.NewAuthHandler(authService, cfg.AccessTokenTTL)
	bookHandler := handler.NewBookHandler(catalogService)
	authorHandler := handler.NewAuthorHandler(catalogService)
	searchHandler := handler.NewSearchHandler(searchService)
	tradeHandler := handler.NewTradeHandler(tradeService, userRepo)
	walletHandler := handler.NewWalletHandler(walletService)
	dutyHandler := handler.NewDutyHandler(dutyService)
	emailHandler := handler.NewEmailHandler(emailService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	authMw := middleware.AuthMiddleware(authService)
	workerMw := middleware.RequireWorker()

	api := r.Group("/api")

	authHandler.RegisterRoutes(api.Group("/auth"), authMw)

	books := api.Group("/books")
	bookHandler.RegisterRoutes(books)
	searchHandler.RegisterRoutes(books)

	staffBooks := api.Group("/books", authMw, workerMw)
	bookHandler.RegisterStaffRoutes(staffBooks)
	bookHandler.RegisterWorkerRoutes(api.Group("/worker", authMw, workerMw))

	authors := api.Group("/authors")
	authorHandler.RegisterRoutes(authors)
	authorHandler.RegisterStaffRoutes(api.Group("/authors", authMw, workerMw))

	tradeHandler.RegisterRoutes(
		api.Group("/books", authMw),
		api.Group("/rents", authMw),
		api.Group("/buys", authMw),
		api.Group("/profile", authMw),
	)

	walletHandler.RegisterRoutes(api.Group("/wallet", authMw))
	dutyHandler.RegisterRoutes(api.Group("/duty", authMw, workerMw))
	emailHandler.RegisterRoutes(api.Group("/email", authMw, workerMw))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	switch cfg.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
