// internal/handlers/card_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"flashcard_keep/internal/identity"
	"flashcard_keep/internal/middleware"
	"flashcard_keep/internal/model"
	"flashcard_keep/internal/service"
	"flashcard_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	msgSaved   = "saved"
	msgDeleted = "deleted"
)

type CardHandler struct {
	service service.CardService
	logger  *slog.Logger
}

func NewCardHandler(s service.CardService, logger *slog.Logger) *CardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardHandler{
		service: s,
		logger:  logger,
	}
}

// requestLogger はミドルウェアが用意したリクエストスコープのロガーにハンドラ名を付けます。
func (h *CardHandler) requestLogger(r *http.Request, name string) *slog.Logger {
	logger, ok := middleware.LoggerFromContext(r.Context())
	if !ok {
		logger = h.logger
	}
	return logger.With(slog.String("handler", name))
}

// GetSample は固定の単語と例文を返すハンドラ
func (h *CardHandler) GetSample(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r, "GetSample")
	webutil.RespondWithJSON(w, http.StatusOK, h.service.Sample(r.Context()), logger)
}

// SaveCard はカードを1枚保存するハンドラ
// メールアドレスの確認を入力チェックより先に行います。
func (h *CardHandler) SaveCard(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r, "SaveCard")

	var req model.SaveCardRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil && !errors.Is(err, webutil.ErrEmptyBody) {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is not valid JSON.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	identityKey, ok := h.resolveIdentity(w, logger, req.Email)
	if !ok {
		return
	}
	logger = logger.With(slog.String("identity_key", identityKey))

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
			firstErr := validationErrors[0]
			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	key, err := h.service.SaveCard(r.Context(), identityKey, req.Card())
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			appErr := model.NewAppError("VALIDATION_ERROR", "At least one of word, sentence or translation must be filled in.", "word", err)
			webutil.HandleError(w, logger, appErr)
			return
		}
		logger.Error("Error saving card in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card saved successfully", slog.String("key", key))
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: msgSaved, Key: key}, logger)
}

// LoadCards はユーザーの全カードを返すハンドラ
// メールアドレスが無い場合はゲストとして空のオブジェクトを返します。
// email 以外のフィールドは無視します。
func (h *CardHandler) LoadCards(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r, "LoadCards")

	var req model.EmailRequest
	if err := webutil.DecodeJSONBodyLenient(w, r, &req); err != nil && !errors.Is(err, webutil.ErrEmptyBody) {
		logger.Info("Undecodable load request treated as guest", slog.String("error", err.Error()))
		req = model.EmailRequest{}
	}

	identityKey, err := identity.Resolve(req.Email)
	if err != nil {
		logger.Debug("No identity supplied, returning empty collection")
		webutil.RespondWithJSON(w, http.StatusOK, model.UserCollection{}, logger)
		return
	}
	logger = logger.With(slog.String("identity_key", identityKey))

	cards, err := h.service.LoadCards(r.Context(), identityKey)
	if err != nil {
		logger.Error("Error loading cards from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if cards == nil {
		cards = model.UserCollection{}
	}

	logger.Info("Cards loaded successfully", slog.Int("count", len(cards)))
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

// DeleteCard は URL の {key} のカードを削除するハンドラ
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r, "DeleteCard")
	key := chi.URLParam(r, "key")
	logger = logger.With(slog.String("key", key))

	var req model.EmailRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil && !errors.Is(err, webutil.ErrEmptyBody) {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is not valid JSON.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	identityKey, ok := h.resolveIdentity(w, logger, req.Email)
	if !ok {
		return
	}
	logger = logger.With(slog.String("identity_key", identityKey))

	if err := h.service.DeleteCard(r.Context(), identityKey, key); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Card not found")
			appErr := model.NewAppError("NOT_FOUND", "The card was not found.", "key", err)
			webutil.HandleError(w, logger, appErr)
			return
		}
		logger.Error("Error deleting card in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card deleted successfully")
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: msgDeleted}, logger)
}

// resolveIdentity は保存キーを求め、失敗時は 400 を書き込んで false を返します。
func (h *CardHandler) resolveIdentity(w http.ResponseWriter, logger *slog.Logger, email string) (string, bool) {
	identityKey, err := identity.Resolve(email)
	if err != nil {
		logger.Warn("Request without email", slog.String("error", err.Error()))
		appErr := model.NewAppError("AUTHENTICATION_MISSING", "Please sign in with an email first.", "email", err)
		webutil.HandleError(w, logger, appErr)
		return "", false
	}
	return identityKey, true
}
