// File: dinebot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dinebot/config"
	"dinebot/handlers"
	"dinebot/routes"
	"dinebot/services/catalog"
	"dinebot/services/dialogue"
	ai "dinebot/services/intelligence"
	"dinebot/services/orders"
	"dinebot/services/tables"
	"dinebot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// External collaborator clients. Catalog reads go through a short-lived
	// redis cache; availability and orders are always live.
	catalogClient := catalog.NewClient(config.AppConfig.CatalogAPIURL, logger)
	catalogFetcher := catalog.NewCachedFetcher(catalogClient, utils.GetCacheClient(),
		time.Duration(config.AppConfig.CatalogCacheTTLSeconds)*time.Second, logger)
	availabilitySvc := tables.NewHTTPAvailabilityService(config.AppConfig.TablesAPIURL, logger)
	orderSvc := orders.NewHTTPOrderService(config.AppConfig.OrdersAPIURL, logger)

	// Generative fallback. Without an API key the deterministic cascade
	// stages still carry the conversation.
	var generator ai.Generator
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		client, err := ai.NewGeminiClient(key)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		generator = client
	} else {
		logger.Warn("GEMINI_API_KEY not set; generative stages disabled")
	}
	ctxStore := ai.NewRedisContextStore(utils.GetAIContextCacheClient(), 30*time.Minute)
	cascade := ai.NewCascade(generator, ctxStore, logger)

	// Dialogue engine.
	reservationFlow := dialogue.NewReservationFlow(availabilitySvc, orderSvc, config.AppConfig.ReservationFee, logger)
	orderFlow := dialogue.NewOrderFlow(orderSvc, logger)
	engine := dialogue.NewEngine(catalogFetcher, reservationFlow, orderFlow, cascade, logger)

	chatHandler := handlers.NewChatHandler(engine)

	handlerBundle := &handlers.HandlerBundle{
		ChatHandler: chatHandler.HandleChat,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
