package handlers

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"flashcard_keep/internal/config"
	"flashcard_keep/internal/model"
)

type PageHandler struct {
	tmpl   *template.Template
	sample model.SampleResponse
	logger *slog.Logger
}

type indexData struct {
	Title  string
	Sample model.SampleResponse
}

func NewPageHandler(tmpl *template.Template, sample model.SampleResponse, logger *slog.Logger) *PageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{tmpl: tmpl, sample: sample, logger: logger}
}

// Index はトップページを描画します
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	data := indexData{Title: config.AppName, Sample: h.sample}
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		h.logger.Error("Error rendering index page", slog.Any("error", err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
