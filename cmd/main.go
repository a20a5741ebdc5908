// cmd/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"flashcard_keep/internal/config"
	"flashcard_keep/internal/handlers"
	"flashcard_keep/internal/repository"
	"flashcard_keep/internal/service"
	"flashcard_keep/internal/web"
)

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	// 設定ファイル読み込み用の一時的なロガー設定
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load(*configDir)
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Level, os.Getenv("APP_ENV"))
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	tmpl, err := web.Templates()
	if err != nil {
		slog.Error("Error parsing page templates", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency Injection
	cardRepo := repository.NewFileCardRepository(cfg.Storage, logger)
	cardService := service.NewCardService(cardRepo, logger)
	cardHandler := handlers.NewCardHandler(cardService, logger)
	pageHandler := handlers.NewPageHandler(tmpl, cardService.Sample(context.Background()), logger)

	router := handlers.NewRouter(handlers.RouterDeps{
		Config: cfg,
		Logger: logger,
		Cards:  cardHandler,
		Pages:  pageHandler,
		Static: web.Static(),
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port), slog.String("storage_dir", cfg.Storage.Dir))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	slog.Info("Server exiting")
}

// newLogger は設定のログレベルと APP_ENV から slog ロガーを組み立てます。
// dev では tint のカラー表示、それ以外は JSON です。
func newLogger(level, appEnv string) *slog.Logger {
	logLevel := new(slog.LevelVar)
	unknown := false
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info", "":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		unknown = true
	}

	var handler slog.Handler
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}

	logger := slog.New(handler)
	if unknown {
		logger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}
	return logger
}
