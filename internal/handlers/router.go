package handlers

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"flashcard_keep/internal/config"
	"flashcard_keep/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// RouterDeps はルーター構築に必要な依存関係です。
type RouterDeps struct {
	Config *config.Config
	Logger *slog.Logger
	Cards  *CardHandler
	Pages  *PageHandler
	Static fs.FS
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(d.Logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   d.Config.CORS.AllowedOrigins,
		AllowedMethods:   d.Config.CORS.AllowedMethods,
		AllowedHeaders:   d.Config.CORS.AllowedHeaders,
		ExposedHeaders:   d.Config.CORS.ExposedHeaders,
		AllowCredentials: d.Config.CORS.AllowCredentials,
		MaxAge:           d.Config.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Get("/", d.Pages.Index)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(d.Static))))

	r.Get("/api/data", d.Cards.GetSample)
	r.Post("/save", d.Cards.SaveCard)
	r.Post("/load", d.Cards.LoadCards)
	r.Post("/delete/{key}", d.Cards.DeleteCard)

	r.Get("/health", healthHandler(d.Config.Storage.Dir, d.Logger))

	return r
}

// healthHandler は保存ディレクトリが参照できるかを確認します。
// まだ一度も保存されていない (ディレクトリが無い) 状態も正常とみなします。
func healthHandler(dir string, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := os.Stat(dir)
		if err != nil && !os.IsNotExist(err) {
			logger.ErrorContext(r.Context(), "Health check failed: storage directory not accessible", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err == nil && !info.IsDir() {
			logger.ErrorContext(r.Context(), "Health check failed: storage path is not a directory", slog.String("dir", dir))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
