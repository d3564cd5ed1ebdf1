package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/luay-ju/formilon-project/internal/cache"
	"github.com/luay-ju/formilon-project/internal/config"
	"github.com/luay-ju/formilon-project/internal/repository"
	"github.com/luay-ju/formilon-project/internal/service"
	"github.com/luay-ju/formilon-project/internal/transport/rest"
	"github.com/luay-ju/formilon-project/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	formRepo := repository.NewFormRepo(db)
	submissionRepo := repository.NewSubmissionRepo(db)

	// Initialize caches
	resultsCache := cache.NewResultsCache(rdb, cfg.ResultsTTL)

	// Initialize services
	authSvc := service.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
	formSvc := service.NewFormService(formRepo, submissionRepo)
	resultsSvc := service.NewResultsService(formRepo, submissionRepo, resultsCache)
	submissionSvc := service.NewSubmissionService(formRepo, submissionRepo)

	// Inject results service into submission service for cache
	// invalidation and live updates on new submissions
	submissionSvc.SetResultsService(resultsSvc)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	resultsSvc.SetBroadcaster(wsHub)
	formSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		FormService:       formSvc,
		SubmissionService: submissionSvc,
		ResultsService:    resultsSvc,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/forms")
		log.Println("  GET/PUT/DELETE /v1/forms/{formId}")
		log.Println("  POST /v1/forms/{formId}/publish")
		log.Println("  GET  /v1/forms/{formId}/view")
		log.Println("  POST /v1/submissions")
		log.Println("  GET  /v1/forms/{formId}/submissions")
		log.Println("  GET  /v1/forms/{formId}/results")
		log.Println("  WS   /v1/ws/forms/{formId}/results")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
