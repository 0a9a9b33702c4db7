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
	"github.com/sashabryl/train-station-api-service/internal/di"
	"github.com/sashabryl/train-station-api-service/internal/middleware"
	"github.com/sashabryl/train-station-api-service/internal/service"
	"github.com/sashabryl/train-station-api-service/pkg/config"
	"github.com/sashabryl/train-station-api-service/pkg/database"
	"github.com/sashabryl/train-station-api-service/pkg/logger"
	pkgredis "github.com/sashabryl/train-station-api-service/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       cfg.App.Environment,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting Train Station API...")

	ctx := context.Background()

	// Initialize database connection
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxOpenConns),
		MinConns:        int32(cfg.Database.MaxIdleConns),
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   2 * time.Second,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

	// Initialize Redis connection, optional
	var redisClient *pkgredis.Client
	redisCfg := &pkgredis.Config{
		Host:          cfg.Redis.Host,
		Port:          cfg.Redis.Port,
		Password:      cfg.Redis.Password,
		DB:            cfg.Redis.DB,
		PoolSize:      cfg.Redis.PoolSize,
		MinIdleConns:  cfg.Redis.MinIdleConns,
		MaxRetries:    3,
		RetryInterval: 100 * time.Millisecond,
		DialTimeout:   cfg.Redis.DialTimeout,
		ReadTimeout:   cfg.Redis.ReadTimeout,
		WriteTimeout:  cfg.Redis.WriteTimeout,
	}
	redisClient, err = pkgredis.NewClient(ctx, redisCfg)
	if err != nil {
		appLog.Warn(fmt.Sprintf("Redis connection failed, caching and idempotency disabled: %v", err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLog.Info("Redis connected")
	}

	// Initialize Kafka event publisher
	var eventPublisher service.EventPublisher = service.NewNoOpEventPublisher()
	if cfg.Kafka.Enabled {
		eventPubCfg := &service.EventPublisherConfig{
			Brokers:     cfg.Kafka.Brokers,
			Topic:       cfg.Kafka.Topic,
			ServiceName: cfg.App.Name,
			ClientID:    cfg.Kafka.ClientID,
		}
		kafkaPublisher, err := service.NewKafkaEventPublisher(ctx, eventPubCfg)
		if err != nil {
			appLog.Warn(fmt.Sprintf("Kafka connection failed, using no-op publisher: %v", err))
		} else {
			eventPublisher = kafkaPublisher
			appLog.Info("Kafka event publisher connected")
		}
	}
	defer eventPublisher.Close()

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		DB:          db,
		Redis:       redisClient,
		Publisher:   eventPublisher,
		ServiceName: cfg.App.Name,
		Version:     cfg.App.Version,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(appLog))

	// Health check endpoints
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	auth := middleware.Auth(cfg.JWT.Secret)
	admin := middleware.AdminOnly()

	v1 := router.Group("/api/v1")
	{
		registerCRUD(v1, "/train-types", auth, admin, crudHandlers{
			create: container.TrainTypeHandler.Create,
			list:   container.TrainTypeHandler.List,
			get:    container.TrainTypeHandler.GetByID,
			update: container.TrainTypeHandler.Update,
			delete: container.TrainTypeHandler.Delete,
		})
		registerCRUD(v1, "/trains", auth, admin, crudHandlers{
			create: container.TrainHandler.Create,
			list:   container.TrainHandler.List,
			get:    container.TrainHandler.GetByID,
			update: container.TrainHandler.Update,
			delete: container.TrainHandler.Delete,
		})
		registerCRUD(v1, "/stations", auth, admin, crudHandlers{
			create: container.StationHandler.Create,
			list:   container.StationHandler.List,
			get:    container.StationHandler.GetByID,
			update: container.StationHandler.Update,
			delete: container.StationHandler.Delete,
		})
		registerCRUD(v1, "/routes", auth, admin, crudHandlers{
			create: container.RouteHandler.Create,
			list:   container.RouteHandler.List,
			get:    container.RouteHandler.GetByID,
			update: container.RouteHandler.Update,
			delete: container.RouteHandler.Delete,
		})
		registerCRUD(v1, "/crew", auth, admin, crudHandlers{
			create: container.CrewHandler.Create,
			list:   container.CrewHandler.List,
			get:    container.CrewHandler.GetByID,
			update: container.CrewHandler.Update,
			delete: container.CrewHandler.Delete,
		})
		registerCRUD(v1, "/journeys", auth, admin, crudHandlers{
			create: container.JourneyHandler.Create,
			list:   container.JourneyHandler.List,
			get:    container.JourneyHandler.GetByID,
			update: container.JourneyHandler.Update,
			delete: container.JourneyHandler.Delete,
		})

		orders := v1.Group("/orders")
		orders.Use(auth)
		{
			if redisClient != nil {
				orders.POST("", middleware.Idempotency(redisClient), container.OrderHandler.Create)
			} else {
				orders.POST("", container.OrderHandler.Create)
			}
			orders.GET("", container.OrderHandler.List)
			orders.GET("/:id", container.OrderHandler.GetByID)
		}
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("Train Station API listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	appLog.Info("Server exited gracefully")
}

type crudHandlers struct {
	create gin.HandlerFunc
	list   gin.HandlerFunc
	get    gin.HandlerFunc
	update gin.HandlerFunc
	delete gin.HandlerFunc
}

// registerCRUD wires a resource: reads are public, writes require an
// authenticated staff user.
func registerCRUD(rg *gin.RouterGroup, path string, auth, admin gin.HandlerFunc, h crudHandlers) {
	group := rg.Group(path)
	group.GET("", h.list)
	group.GET("/:id", h.get)

	group.POST("", auth, admin, h.create)
	group.PUT("/:id", auth, admin, h.update)
	group.DELETE("/:id", auth, admin, h.delete)
}
