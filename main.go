package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/andreyques41/lyfter-store/audit"
	"github.com/andreyques41/lyfter-store/cache"
	"github.com/andreyques41/lyfter-store/config"
	"github.com/andreyques41/lyfter-store/controller"
	"github.com/andreyques41/lyfter-store/db"
	logger "github.com/andreyques41/lyfter-store/logging"
	"github.com/andreyques41/lyfter-store/router"
	"github.com/andreyques41/lyfter-store/service"
	"github.com/andreyques41/lyfter-store/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Postgres
	if err := db.InitPostgres(); err != nil {
		logger.Fatal("Failed to initialize Postgres", zap.Error(err))
	}
	defer db.ClosePostgres()

	// Initialize Redis
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	kv, err := cache.NewRedis(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer kv.Close()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	eventBus.Start(ctx)

	// Initialize the audit trail
	auditRepository, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"))
	if err != nil {
		logger.Fatal("Failed to initialize Elasticsearch", zap.Error(err))
	}
	auditService := audit.NewService(auditRepository)

	// Initialize services
	validationUtil := util.NewValidationUtil()
	ttls := service.CacheTTLs{
		Entry: config.GetDuration("cache.entryTTL"),
		List:  config.GetDuration("cache.listTTL"),
	}
	services := service.InitializeServices(db.DB, kv, ttls, auditService, validationUtil, eventBus)

	// Initialize controllers and routes
	controllers := controller.InitializeControllers(services)
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(
		controllers,
		kv,
		config.GetInt("ratelimit.requests"),
		config.GetDuration("ratelimit.window"),
	)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context gives the server 5 seconds to finish the requests it is
	// currently handling
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
