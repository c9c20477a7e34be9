package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/shopzone/storefront/internal/catalog"
	"github.com/shopzone/storefront/internal/handlers"
	"github.com/shopzone/storefront/internal/platform/config"
	"github.com/shopzone/storefront/internal/platform/observability"
	"github.com/shopzone/storefront/internal/services"
	"github.com/shopzone/storefront/internal/session"
)

func main() {
	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("storefront")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	catalogStore := catalog.NewStore()
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.FetchTimeout)
	loader, err := catalog.NewLoader(catalog.LoaderDeps{
		Client:         catalogClient,
		Store:          catalogStore,
		ConversionRate: cfg.Catalog.ConversionRate,
		Logger:         logger.Named("catalog"),
	})
	if err != nil {
		logger.Fatal("failed to initialise catalog loader", zap.Error(err))
	}

	// Load in the background so startup never blocks on the upstream API.
	// Until the load finishes the catalog serves empty and /readyz reports 503.
	go func() {
		loadCtx, cancel := context.WithTimeout(context.Background(), cfg.Catalog.FetchTimeout+5*time.Second)
		defer cancel()
		_ = loader.Load(loadCtx)
	}()

	sessionManager, err := session.NewManager(session.ManagerDeps{
		CookieName: cfg.Session.CookieName,
		SigningKey: []byte(cfg.Session.SigningKey),
		Secure:     cfg.Session.Secure,
		MaxIdle:    cfg.Session.MaxIdle,
		Logger:     logger.Named("session"),
	})
	if err != nil {
		logger.Fatal("failed to initialise session manager", zap.Error(err))
	}

	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	var sweepWG sync.WaitGroup
	var sweepTicker *time.Ticker
	if cfg.Session.SweepInterval > 0 {
		sweepTicker = time.NewTicker(cfg.Session.SweepInterval)
		sweepWG.Add(1)
		go func() {
			defer sweepWG.Done()
			sweepLogger := logger.Named("session")
			for {
				select {
				case <-sweepTicker.C:
					if removed := sessionManager.PruneExpired(); removed > 0 {
						sweepLogger.Info("pruned idle sessions", zap.Int("count", removed))
					}
				case <-sweepCtx.Done():
					return
				}
			}
		}()
	}

	catalogService, err := services.NewCatalogService(services.CatalogServiceDeps{
		Store:  catalogStore,
		Logger: eventLogger(logger.Named("catalog")),
	})
	if err != nil {
		logger.Fatal("failed to initialise catalog service", zap.Error(err))
	}
	catalogHandlers := handlers.NewCatalogHandlers(catalogService)

	cartService, err := services.NewCartService(services.CartServiceDeps{
		Catalog: catalogStore,
		Logger:  eventLogger(logger.Named("cart")),
	})
	if err != nil {
		logger.Fatal("failed to initialise cart service", zap.Error(err))
	}
	cartHandlers := handlers.NewCartHandlers(cartService)

	wishlistService, err := services.NewWishlistService(services.WishlistServiceDeps{
		Catalog: catalogStore,
		Logger:  eventLogger(logger.Named("wishlist")),
	})
	if err != nil {
		logger.Fatal("failed to initialise wishlist service", zap.Error(err))
	}
	wishlistHandlers := handlers.NewWishlistHandlers(wishlistService)

	authService, err := services.NewAuthService(services.AuthServiceDeps{
		Logger: eventLogger(logger.Named("auth")),
	})
	if err != nil {
		logger.Fatal("failed to initialise auth service", zap.Error(err))
	}
	authHandlers := handlers.NewAuthHandlers(authService)

	checkoutService, err := services.NewCheckoutService(services.CheckoutServiceDeps{
		Clock:  time.Now,
		Logger: eventLogger(logger.Named("checkout")),
	})
	if err != nil {
		logger.Fatal("failed to initialise checkout service", zap.Error(err))
	}
	checkoutHandlers := handlers.NewCheckoutHandlers(checkoutService)

	adminService, err := services.NewAdminService(services.AdminServiceDeps{
		Catalog: catalogStore,
		Logger:  eventLogger(logger.Named("admin")),
	})
	if err != nil {
		logger.Fatal("failed to initialise admin service", zap.Error(err))
	}
	adminHandlers := handlers.NewAdminHandlers(adminService)

	sessionHandlers := handlers.NewSessionHandlers()

	middlewares := []func(http.Handler) http.Handler{
		observability.InjectLoggerMiddleware(logger.Named("http")),
		observability.RecoveryMiddleware(logger.Named("http")),
		observability.RequestLoggerMiddleware(),
		sessionManager.Middleware(),
	}

	healthHandlers := handlers.NewHealthHandlers(func() bool {
		return catalogService.Ready(context.Background())
	})

	router := handlers.NewRouter(
		handlers.WithMiddlewares(middlewares...),
		handlers.WithHealthHandlers(healthHandlers),
		handlers.WithCatalogRoutes(catalogHandlers.Routes),
		handlers.WithCartRoutes(cartHandlers.Routes),
		handlers.WithWishlistRoutes(wishlistHandlers.Routes),
		handlers.WithAuthRoutes(authHandlers.Routes),
		handlers.WithSessionRoutes(sessionHandlers.Routes),
		handlers.WithCheckoutRoutes(checkoutHandlers.Routes),
		handlers.WithAdminRoutes(adminHandlers.Routes),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("shopzone storefront listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	if sweepTicker != nil {
		sweepTicker.Stop()
	}
	sweepCancel()
	sweepWG.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func eventLogger(logger *zap.Logger) func(context.Context, string, map[string]any) {
	return func(_ context.Context, event string, fields map[string]any) {
		zFields := make([]zap.Field, 0, len(fields)+1)
		zFields = append(zFields, zap.String("event", event))
		for k, v := range fields {
			zFields = append(zFields, zap.Any(k, v))
		}
		logger.Debug("service event", zFields...)
	}
}
