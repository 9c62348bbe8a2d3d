package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-inventory-api/internal/config"
	httpAPI "github.com/iyhunko/product-inventory-api/internal/http"
	"github.com/iyhunko/product-inventory-api/internal/http/controller"
	"github.com/iyhunko/product-inventory-api/internal/logger"
	"github.com/iyhunko/product-inventory-api/internal/metrics"
	"github.com/iyhunko/product-inventory-api/internal/repository/memory"
	"github.com/iyhunko/product-inventory-api/internal/service"
	sqspkg "github.com/iyhunko/product-inventory-api/internal/sqs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)
	if !conf.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	productRepository := memory.NewSeededProductRepository()

	// Notifications are optional; without a queue URL the API runs standalone.
	var publisher service.Publisher
	if conf.NotificationsEnabled() {
		sqsClient, err := sqspkg.NewClient(ctx, conf.AWS)
		handleErr("creating SQS client", err)
		publisher = sqspkg.NewPublisher(sqsClient, conf.AWS.SQSQueueURL)
		slog.Info("Product notifications enabled", slog.String("queueURL", conf.AWS.SQSQueueURL))
	}

	productService := service.NewProductService(productRepository, publisher)

	ctr := controller.New(conf)
	productCtr := controller.NewProductController(productService)
	router := httpAPI.InitRouter(conf, gin.New(), ctr, productCtr)

	httpServer := &http.Server{
		Addr:              ":" + conf.HTTPServer.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("HTTP server starting", slog.String("port", conf.HTTPServer.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			handleErr("listening to HTTP requests", err)
		}
	}()

	metricsServer := metrics.StartMetricsServer(conf)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", slog.Any("err", err))
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Metrics server shutdown failed", slog.Any("err", err))
	}
}

func handleErr(msg string, err error) {
	if err != nil {
		slog.Error("error while "+msg, slog.Any("err", err))
		os.Exit(1)
	}
}
