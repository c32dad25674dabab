// Package main is the application entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hardeep652/sihhackathon/internal/config"
	"github.com/hardeep652/sihhackathon/internal/dataset"
	"github.com/hardeep652/sihhackathon/internal/handler"
	"github.com/hardeep652/sihhackathon/internal/middleware"
	"github.com/hardeep652/sihhackathon/internal/repository"
	"github.com/hardeep652/sihhackathon/internal/service"
	"github.com/hardeep652/sihhackathon/pkg/database"
	"github.com/hardeep652/sihhackathon/pkg/embedding"
	"github.com/hardeep652/sihhackathon/pkg/kafka"
	"github.com/hardeep652/sihhackathon/pkg/log"
	"github.com/hardeep652/sihhackathon/pkg/storage"
	"github.com/hardeep652/sihhackathon/pkg/token"
)

func main() {
	// 1. Configuration and logger.
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync()
	log.Info("logger initialized successfully")

	// 2. Backing stores.
	database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)

	source := newRowSource(cfg)
	embeddingClient := embedding.NewClient(cfg.Embedding)
	store := dataset.NewStore(source, embeddingClient)

	// 3. Warm the snapshot before serving; queries must never pay the
	// normalize-and-embed cost themselves.
	warmCtx, cancelWarm := context.WithTimeout(context.Background(), 5*time.Minute)
	snap := store.Get(warmCtx)
	cancelWarm()
	log.Infof("dataset ready: %d records, %d districts, index ready: %t",
		len(snap.Records), len(snap.Districts), snap.Index != nil)

	// 4. Repositories and services.
	conversationRepo := repository.NewConversationRepository(database.RDB)

	var publisher service.EventPublisher
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka)
		defer producer.Close()
		publisher = producer
	}

	jwtManager := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpireHours)
	chatService := service.NewChatService(store, conversationRepo, publisher)
	conversationService := service.NewConversationService(conversationRepo)

	// 5. Router.
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	datasetHandler := handler.NewDatasetHandler(store)
	r.GET("/healthz", datasetHandler.Health)

	apiV1 := r.Group("/api/v1")
	{
		chatHandler := handler.NewChatHandler(chatService)
		chat := apiV1.Group("/chat")
		{
			chat.POST("/query", chatHandler.Query)
			chat.GET("/ws", chatHandler.HandleWS)
			chat.GET("/history", handler.NewConversationHandler(conversationService).GetHistory)
		}

		apiV1.GET("/districts", datasetHandler.Districts)

		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", handler.NewAuthHandler(jwtManager, cfg.Admin).Login)
		}

		admin := apiV1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(jwtManager))
		{
			adminHandler := handler.NewAdminHandler(store, conversationService)
			admin.GET("/stats", adminHandler.Stats)
			admin.POST("/reload", adminHandler.Reload)
			admin.GET("/conversations", adminHandler.Conversations)
		}
	}

	// 6. Serve with graceful shutdown.
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP server shutdown failed: %v", err)
	}
	log.Info("server stopped gracefully")
}

// newRowSource wires the dataset source selected in the config.
func newRowSource(cfg config.Config) dataset.RowSource {
	switch cfg.Dataset.Source {
	case "mysql":
		database.InitMySQL(cfg.Database.MySQL.DSN)
		return dataset.NewMySQLTableSource(repository.NewRecordRepository(database.DB))
	case "minio":
		storage.InitMinIO(cfg.MinIO)
		return dataset.NewMinIOObjectSource(cfg.MinIO)
	default:
		return dataset.NewCSVFileSource(cfg.Dataset.Path)
	}
}
