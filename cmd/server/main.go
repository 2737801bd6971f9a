// cmd/server/main.go
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

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	ent "github.com/taskdeck/taskdeck/ent/generated"
	"github.com/taskdeck/taskdeck/ent/generated/migrate"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/database"
	"github.com/taskdeck/taskdeck/internal/httpapi"
	"github.com/taskdeck/taskdeck/internal/repository"
	"github.com/taskdeck/taskdeck/internal/service"
	"github.com/taskdeck/taskdeck/internal/storage"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to database with Ent
	log.Println("Connecting to PostgreSQL with Ent...")
	entClient, err := database.NewEntClient(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
		Debug:    cfg.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := entClient.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()

	// Run auto migration
	if cfg.Server.AutoMigrate {
		if err := runAutoMigration(context.Background(), entClient); err != nil {
			log.Fatalf("Failed to run auto migration: %v", err)
		}
	}

	// Initialize the attachment object store
	store, err := newObjectStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize object store: %v", err)
	}

	// Initialize repositories and services
	taskRepo := repository.NewEntTaskRepository(entClient)
	subtaskRepo := repository.NewEntSubtaskRepository(entClient)
	attachmentRepo := repository.NewEntAttachmentRepository(entClient)

	taskService := service.NewTaskService(taskRepo, subtaskRepo, attachmentRepo)
	subtaskService := service.NewSubtaskService(subtaskRepo)
	attachmentService := service.NewAttachmentService(attachmentRepo, store)
	retentionService := service.NewRetentionService(taskRepo, cfg.Retention.MaxAge)

	handler := httpapi.NewHandler(taskService, subtaskService, attachmentService)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.HTTPPort),
		Handler: logRequests(handler.Routes()),
	}

	// Start the retention sweep
	sweeper := cron.New()
	if _, err := sweeper.AddFunc(
		fmt.Sprintf("@every %ds", int(cfg.Retention.SweepInterval.Seconds())),
		func() { runRetentionSweep(retentionService) },
	); err != nil {
		log.Fatalf("Failed to schedule retention sweep: %v", err)
	}
	sweeper.Start()
	log.Printf("Retention sweep scheduled every %v (max age %v)",
		cfg.Retention.SweepInterval, cfg.Retention.MaxAge)

	// Start server in goroutine
	go func() {
		log.Printf("TaskDeck API listening on port %s", cfg.Server.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	cronCtx := sweeper.Stop()
	<-cronCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}

	log.Println("Server shutdown complete")
}

// runAutoMigration runs the auto migration
func runAutoMigration(ctx context.Context, client *ent.Client) error {
	log.Println("Running auto migration...")
	err := client.Schema.Create(
		ctx,
		migrate.WithDropIndex(true),
		migrate.WithDropColumn(true),
		migrate.WithForeignKeys(true),
	)
	if err != nil {
		return fmt.Errorf("run auto migration: %w", err)
	}
	log.Println("Auto migration completed")
	return nil
}

func newObjectStore(ctx context.Context, cfg *config.Config) (storage.ObjectStore, error) {
	switch cfg.Storage.Backend {
	case "s3":
		log.Printf("Using S3 object store (bucket %s)", cfg.Storage.S3Bucket)
		return storage.NewS3Store(ctx, cfg.Storage.S3Bucket, cfg.Storage.KeyPrefix)
	default:
		log.Println("Using in-memory object store (development only)")
		return storage.NewMemoryStore(), nil
	}
}

func runRetentionSweep(retention *service.RetentionService) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	purged, err := retention.PurgeSoftDeleted(ctx)
	if err != nil {
		log.Printf("Retention sweep failed: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("Retention sweep purged %d tasks", purged)
	}
}

// logRequests logs every request with its duration.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[INFO] %s %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}
