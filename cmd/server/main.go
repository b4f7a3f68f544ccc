package main

// @title           Election Tally Service API
// @version         1.0
// @description     A RESTful API service for election tally collection, review and aggregation
// @host            localhost:8080
// @BasePath        /api/v1
// @schemes         http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tally-service/internal/config"
	"tally-service/internal/database"
	"tally-service/internal/events"
	"tally-service/internal/repository"
	"tally-service/internal/server"
	"tally-service/internal/server/handlers"
	"tally-service/internal/service"
	"tally-service/internal/storage"
	"tally-service/internal/ws"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	slog.Info("Starting tally server")

	// Initialize MySQL connection
	db, err := database.NewMySQLDB(
		cfg.MySQL.User,
		cfg.MySQL.Password,
		cfg.MySQL.Host,
		cfg.MySQL.Port,
		cfg.MySQL.DBName,
	)
	if err != nil {
		slog.Error("Failed to connect to MySQL", "error", err)
		os.Exit(1)
	}

	// Initialize MinIO attachment storage; the service still runs without it,
	// uploads just report unavailable.
	store, err := storage.NewMinIOClient(cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket)
	if err != nil {
		slog.Warn("Attachment storage unavailable", "error", err)
		store = nil
	}

	// Initialize event pipeline
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	defer publisher.Close()

	// Initialize repositories
	credentialRepo := repository.NewCredentialRepository(db)
	userRepo := repository.NewUserRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	incidentRepo := repository.NewIncidentRepository(db)
	configRepo := repository.NewConfigRepository(db)

	// Initialize services
	authService := service.NewAuthService(credentialRepo, userRepo, cfg.JWT.Secret, cfg.JWT.ExpirationTime)
	userService := service.NewUserService(credentialRepo, userRepo)
	candidateService := service.NewCandidateService(candidateRepo)
	submissionService := service.NewSubmissionService(submissionRepo, publisher)
	aggregationService := service.NewAggregationService(candidateRepo, submissionRepo)
	incidentService := service.NewIncidentService(incidentRepo, publisher)
	configService := service.NewConfigService(configRepo)

	// Initialize websocket hub
	hub := ws.NewHub()
	go hub.Run()

	// Feed the hub from the event topic
	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	defer cancelConsumer()
	if cfg.Kafka.Enabled {
		consumer, err := events.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, hub)
		if err != nil {
			slog.Error("Failed to start event consumer", "error", err)
			os.Exit(1)
		}
		defer consumer.Close()
		go func() {
			if err := consumer.Run(consumerCtx); err != nil && consumerCtx.Err() == nil {
				slog.Error("Event consumer stopped", "error", err)
			}
		}()
	}

	// Initialize router
	router := gin.Default()
	server.SetupRoutes(router, server.Handlers{
		Auth:       handlers.NewAuthHandler(authService, userService),
		User:       handlers.NewUserHandler(userService),
		Candidate:  handlers.NewCandidateHandler(candidateService),
		Submission: handlers.NewSubmissionHandler(submissionService),
		Report:     handlers.NewReportHandler(aggregationService),
		Incident:   handlers.NewIncidentHandler(incidentService),
		Config:     handlers.NewConfigHandler(configService),
		Upload:     handlers.NewUploadHandler(store),
		Ws:         handlers.NewWsHandler(hub),
	}, authService, cfg.JWT.Secret)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cancelConsumer()
	hub.Stop()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
