package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"flashcard_keep/internal/model"
)

// maxBodyBytes はリクエストボディの上限です。カード1枚分には十分な大きさです。
const maxBodyBytes = 1 << 20

// ErrEmptyBody はボディが空だったことを表します。
var ErrEmptyBody = errors.New("request body is empty")

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラーです。
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	return decodeJSONBody(w, r, dst, true)
}

// DecodeJSONBodyLenient は未知のフィールドを無視してデコードします。
// メールアドレスだけを読む /load のように、余分なフィールドで失敗させたくない場合に使います。
func DecodeJSONBodyLenient(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	return decodeJSONBody(w, r, dst, false)
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}, strict bool) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if strict {
		decoder.DisallowUnknownFields()
	}

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return errors.Join(model.ErrInvalidInput, err)
	}
	return nil
}
