// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound              = errors.New("resource not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrAuthenticationMissing = errors.New("email is required")
	ErrCorruptStore          = errors.New("stored collection is not valid JSON")
	ErrInternalServer        = errors.New("internal server error")
)

// ErrorDetail はエラーレスポンスの詳細部分です。
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
// message はフロントエンドが alert にそのまま使うためトップレベルにも置く
type APIErrorResponse struct {
	Message string      `json:"message"`
	Error   ErrorDetail `json:"error"`
}

// AppError はクライアント向けの詳細と根本原因のエラーをまとめて運びます。
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Detail.Message
	}
	return e.Detail.Code + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}
