package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "todo-hub.com/todo-hub/internal/configs"
	httpapi "todo-hub.com/todo-hub/internal/http"
	middleware "todo-hub.com/todo-hub/internal/http/middlewares"
	"todo-hub.com/todo-hub/internal/logging"
	repository "todo-hub.com/todo-hub/internal/repositories"
	"todo-hub.com/todo-hub/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the todo hub HTTP API against the configured database and object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		logger := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogOutput)
		defer func() { _ = logger.Sync() }()

		database := config.NewDatabaseClient(cfg.DatabaseDSN)
		if err := config.AutoMigrate(database); err != nil {
			log.Fatalf("migration failed: %v", err)
		}

		store := config.NewStorageClient(cfg)
		{
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := store.EnsureBucket(ctx); err != nil {
				log.Fatalf("failed to ensure storage bucket %q: %v", cfg.StorageBucket, err)
			}
		}

		todoRepo := repository.NewTodoRepository(database)
		categoryRepo := repository.NewCategoryRepository(database)
		tagRepo := repository.NewTagRepository(database)
		subtaskRepo := repository.NewSubtaskRepository(database)
		attachmentRepo := repository.NewAttachmentRepository(database)

		todoService := services.NewTodoService(todoRepo, categoryRepo, attachmentRepo, store, cfg.TimeIncrementMinutes)
		categoryService := services.NewCategoryService(categoryRepo)
		tagService := services.NewTagService(tagRepo)
		subtaskService := services.NewSubtaskService(subtaskRepo, todoRepo)
		attachmentService := services.NewAttachmentService(
			attachmentRepo,
			todoRepo,
			store,
			cfg.MaxFileSizeMB,
			time.Duration(cfg.SignedURLTTLSeconds)*time.Second,
		)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		handler := httpapi.NewHandler(todoService, categoryService, tagService, subtaskService, attachmentService, logger)
		httpapi.Register(e, handler, logger, middleware.NewMetrics(), cfg.RateLimit)

		go func() {
			logger.Info("HTTP server listening", zap.String("addr", cfg.AppURL))
			if err := e.Start(cfg.AppURL); err != nil {
				logger.Info("server stopped", zap.Error(err))
			}
		}()

		<-ctx.Done()

		echoCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(echoCtx)

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
