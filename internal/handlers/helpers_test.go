// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flashcard_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newJSONRequest はボディを JSON にしたリクエストを作ります。string はそのまま送ります。
func newJSONRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err, "Failed to marshal request body")
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func serve(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, newJSONRequest(t, method, path, body))
	return rr
}

// verifyErrorResponse はエラーレスポンスのコードとメッセージを検証します。
func verifyErrorResponse(t *testing.T, rr *httptest.ResponseRecorder, wantCode string) {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp), "Failed to unmarshal error response body: %s", rr.Body.String())
	assert.NotEmpty(t, errResp.Message, "Error message should not be empty")
	assert.Equal(t, errResp.Message, errResp.Error.Message)
	if wantCode != "" {
		assert.Equal(t, wantCode, errResp.Error.Code)
	}
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) model.MessageResponse {
	t.Helper()
	var resp model.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func decodeCollection(t *testing.T, rr *httptest.ResponseRecorder) model.UserCollection {
	t.Helper()
	var cards model.UserCollection
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cards))
	return cards
}
