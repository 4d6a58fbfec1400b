package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/moneyforge/fincalc/internal/cache"
	"github.com/moneyforge/fincalc/internal/config"
	"github.com/moneyforge/fincalc/internal/handler"
	"github.com/moneyforge/fincalc/internal/service"
	"github.com/moneyforge/fincalc/pkg/response"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	configureLogger(logger, cfg)

	// Initialize Redis only when schedule caching is enabled
	var redisClient *redis.Client
	var scheduleCache cache.Cache
	if cfg.Cache.Enabled {
		redisClient = initRedis(cfg)
		defer redisClient.Close()
		scheduleCache = cache.NewRedisCache(redisClient)
	}

	//Initialize service and handlers
	calculatorService := service.NewCalculatorService(scheduleCache, cfg, logger)
	calculatorHandler := handler.NewCalculatorHandler(calculatorService, logger)
	healthHandler := handler.NewHealthHandler(redisClient, cfg.GetHealthTimeout())

	// Setup routes
	router := setupRoutes(calculatorHandler, healthHandler, logger)

	// Start server
	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

func configureLogger(logger *logrus.Logger, cfg *config.Config) {
	if cfg.Logging.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(calculatorHandler *handler.CalculatorHandler, healthHandler *handler.HealthHandler, logger *logrus.Logger) *mux.Router {
	router := mux.NewRouter()

	router.Use(response.LoggingMiddleware(logger))
	router.Use(response.CORSMiddleware)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "route not found")
	})

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	/// API routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(response.JSONMiddleware)

	api.HandleFunc("/calculations/payment", calculatorHandler.Payment).Methods("POST")
	api.HandleFunc("/calculations/simple-interest", calculatorHandler.SimpleInterest).Methods("POST")
	api.HandleFunc("/calculations/present-value", calculatorHandler.PresentValue).Methods("POST")
	api.HandleFunc("/calculations/net-present-value", calculatorHandler.NetPresentValue).Methods("POST")
	api.HandleFunc("/calculations/future-value", calculatorHandler.FutureValue).Methods("POST")
	api.HandleFunc("/calculations/amortization", calculatorHandler.Amortize).Methods("POST")
	api.HandleFunc("/calculations/compound-interest", calculatorHandler.CompoundInterest).Methods("POST")

	return router
}
