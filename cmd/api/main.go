package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/vistastore/storefront/internal/catalog"
	"github.com/vistastore/storefront/internal/config"
	"github.com/vistastore/storefront/internal/handler"
	"github.com/vistastore/storefront/internal/middleware"
	"github.com/vistastore/storefront/internal/repository"
	"github.com/vistastore/storefront/internal/service"
	"github.com/vistastore/storefront/internal/storage"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage backend
	var store storage.Store
	switch cfg.Storage.Backend {
	case "memory":
		store = storage.NewMemory()
	case "sqlite":
		db, err := storage.NewSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			log.Error("open sqlite store", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		store = db
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
		})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Error("connect to Redis", "error", err)
			os.Exit(1)
		}
		store = storage.NewRedis(client)
	default:
		log.Error("unknown storage backend", "backend", cfg.Storage.Backend)
		os.Exit(1)
	}
	log.Info("storage ready", "backend", cfg.Storage.Backend)

	// Catalog source
	var source catalog.Source
	if cfg.Catalog.BaseURL != "" {
		source = catalog.NewHTTPSource(cfg.Catalog.BaseURL, nil)
	} else {
		source = catalog.NewFileSource(cfg.Catalog.Dir)
	}

	// Repositories
	userRepo := repository.NewUserRepository(source, store)
	sessionRepo := repository.NewSessionRepository(store)
	productRepo := repository.NewProductRepository(source, store)
	cartRepo := repository.NewCartRepository(store)
	wishlistRepo := repository.NewWishlistRepository(store)
	orderRepo := repository.NewOrderRepository(source, store)
	reviewRepo := repository.NewReviewRepository(store)
	prefsRepo := repository.NewPrefsRepository(store)

	// Services
	authSvc := service.NewAuthService(userRepo, sessionRepo)
	productSvc := service.NewProductService(productRepo)
	cartSvc := service.NewCartService(cartRepo, wishlistRepo, productRepo)
	orderSvc := service.NewOrderService(orderRepo, cartRepo, productRepo)
	reviewSvc := service.NewReviewService(reviewRepo, productRepo)

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	productH := handler.NewProductHandler(productSvc)
	cartH := handler.NewCartHandler(cartSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)
	prefsH := handler.NewPrefsHandler(prefsRepo)
	healthH := handler.NewHealthHandler(store, source)

	// Router
	router := gin.Default()
	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.POST("/logout", authH.Logout)
		auth.GET("/me", authH.Me)

		products := v1.Group("/products")
		products.GET("", productH.List)
		products.GET("/featured", productH.ListFeatured)
		products.GET("/search", productH.Search)
		products.GET("/:id", productH.GetByID)
		products.GET("/:id/reviews", reviewH.List)
		products.POST("/:id/reviews", middleware.RequireSession(authSvc), reviewH.Add)

		admin := products.Group("", middleware.RequireSession(authSvc), middleware.AdminOnly())
		admin.POST("", productH.Create)
		admin.PUT("/:id", productH.Update)
		admin.DELETE("/:id", productH.Delete)

		cart := v1.Group("/cart", middleware.RequireSession(authSvc))
		cart.GET("", cartH.GetCart)
		cart.POST("/items", cartH.AddItem)
		cart.PUT("/items/:productId", cartH.UpdateQty)
		cart.DELETE("/items/:productId", cartH.RemoveItem)
		cart.DELETE("", cartH.Clear)

		wishlist := v1.Group("/wishlist", middleware.RequireSession(authSvc))
		wishlist.GET("", cartH.GetWishlist)
		wishlist.POST("/:productId", cartH.ToggleWishlist)

		orders := v1.Group("/orders", middleware.RequireSession(authSvc))
		orders.POST("", orderH.Checkout)
		orders.GET("", orderH.ListOrders)
		orders.GET("/:id", orderH.GetOrder)

		prefs := v1.Group("/prefs")
		prefs.GET("/theme", prefsH.GetTheme)
		prefs.PUT("/theme", prefsH.SetTheme)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}

	log.Info("server stopped")
}
