// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"flashcard_keep/internal/model"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	switch {
	case errors.As(err, &appErr):
		errResp = model.APIErrorResponse{Message: appErr.Detail.Message, Error: appErr.Detail}
	case statusCode < http.StatusInternalServerError:
		// AppError で包まれていない既知のエラー
		detail := model.ErrorDetail{Code: codeForStatus(statusCode), Message: err.Error()}
		errResp = model.APIErrorResponse{Message: detail.Message, Error: detail}
	default:
		// 予期せぬエラーの詳細はログにだけ出す
		logger.Error("Unhandled error", slog.Any("error", err))
		detail := model.ErrorDetail{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: "An internal server error occurred.",
		}
		errResp = model.APIErrorResponse{Message: detail.Message, Error: detail}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrAuthenticationMissing), errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		// ErrCorruptStore や I/O エラーもここに来る
		return http.StatusInternalServerError
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"failed to build response","error":{"code":"INTERNAL_SERVER_ERROR","message":"failed to build response"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
