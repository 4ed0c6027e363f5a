package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"artify-backend/internal/config"
	"artify-backend/internal/database"
	"artify-backend/internal/handlers"
	"artify-backend/internal/middleware"
	"artify-backend/internal/notify"
	"artify-backend/internal/processor"
	"artify-backend/internal/provider"
	"artify-backend/internal/results"
	"artify-backend/internal/store"
	"artify-backend/internal/styles"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		log.Fatalf("Migration failed: %v", err)
	}
	migrator.Close()
	log.Println("Migrations completed successfully")

	orderStore, err := store.NewOrderStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize order store: %v", err)
	}
	defer orderStore.Close()

	primary := provider.NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIQuality)
	var secondary provider.Generator
	if cfg.ReplicateAPIToken != "" {
		secondary = provider.NewReplicateClient(cfg.ReplicateAPIToken, cfg.ReplicatePollingInterval, cfg.ReplicatePollingTimeout)
	} else {
		log.Println("REPLICATE_API_TOKEN not set; running without a fallback backend")
	}
	adapter := provider.NewAdapter(primary, secondary, cfg.GenerateAttempts, cfg.BackoffBaseWait)

	catalog := styles.NewCatalog()
	resultCache := gocache.New(cfg.ResultImageTTL, cfg.ReaperPeriod)
	persister := results.NewPersister(orderStore, resultCache, cfg.BaseURL)
	notifier := notify.NewEmailNotifier(cfg)

	proc := processor.NewProcessor(orderStore, adapter, persister, catalog, notifier, cfg.BaseURL, cfg.InterRequestDelay)
	supervisor := processor.NewSupervisor(orderStore, proc, cfg.SupervisorPeriod)
	reaper := processor.NewReaper(orderStore, cfg.ReaperPeriod, cfg.ResultImageTTL)

	uploadHandler := handlers.NewUploadHandler(cfg)
	orderHandler := handlers.NewOrderHandler(orderStore, catalog, proc, cfg)
	resultHandler := handlers.NewResultHandler(orderStore, persister)
	adminHandler := handlers.NewAdminHandler(orderStore, catalog, proc, notifier)

	router := gin.Default()

	router.GET("/health", handlers.HealthHandler)
	router.Static("/uploads", cfg.UploadDir)
	router.Static("/static", "static")

	api := router.Group("/api")
	api.POST("/upload", uploadHandler.Upload)
	api.POST("/orders", orderHandler.CreateOrder)
	api.GET("/orders/:order_id", orderHandler.GetOrder)
	api.GET("/orders/:order_id/status", orderHandler.GetOrderStatus)
	api.POST("/orders/:order_id/payment-confirmed", orderHandler.ConfirmPayment)
	api.GET("/orders/:order_id/results/:position", resultHandler.GetResultImage)
	api.GET("/orders/:order_id/source-image", resultHandler.GetSourceImage)

	admin := router.Group("/api/admin")
	admin.Use(middleware.AdminAuthMiddleware(cfg))
	admin.POST("/orders/:order_id/requeue", adminHandler.RequeueOrder)
	admin.POST("/orders/:order_id/resend-notification", adminHandler.ResendNotification)
	admin.POST("/orders/:order_id/cancel", adminHandler.CancelOrder)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		supervisor.Start(groupCtx)
		return nil
	})

	group.Go(func() error {
		reaper.Start(groupCtx)
		return nil
	})

	group.Go(func() error {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		return server.Shutdown(context.Background())
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
	log.Println("Server stopped")
}
