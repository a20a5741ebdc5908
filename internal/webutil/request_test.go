package webutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flashcard_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		noBody    bool
		wantErr   error
		wantEmail string
	}{
		{name: "valid", body: `{"email":"u@x.com"}`, wantEmail: "u@x.com"},
		{name: "no body", noBody: true, wantErr: ErrEmptyBody},
		{name: "empty string", body: "", wantErr: ErrEmptyBody},
		{name: "malformed", body: `{"email":`, wantErr: model.ErrInvalidInput},
		{name: "unknown field", body: `{"email":"u@x.com","role":"admin"}`, wantErr: model.ErrInvalidInput},
		{name: "wrong type", body: `{"email":42}`, wantErr: model.ErrInvalidInput},
		{name: "too large", body: `{"email":"` + strings.Repeat("a", maxBodyBytes) + `"}`, wantErr: model.ErrInvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req *http.Request
			if tc.noBody {
				req = httptest.NewRequest(http.MethodPost, "/load", nil)
			} else {
				req = httptest.NewRequest(http.MethodPost, "/load", strings.NewReader(tc.body))
			}

			var dst model.EmailRequest
			err := DecodeJSONBody(httptest.NewRecorder(), req, &dst)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantEmail, dst.Email)
		})
	}
}

func TestDecodeJSONBodyLenient(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   error
		wantEmail string
	}{
		{name: "valid", body: `{"email":"u@x.com"}`, wantEmail: "u@x.com"},
		{name: "unknown field is ignored", body: `{"email":"u@x.com","client":"web"}`, wantEmail: "u@x.com"},
		{name: "empty string", body: "", wantErr: ErrEmptyBody},
		{name: "malformed", body: `{"email":`, wantErr: model.ErrInvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/load", strings.NewReader(tc.body))

			var dst model.EmailRequest
			err := DecodeJSONBodyLenient(httptest.NewRecorder(), req, &dst)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantEmail, dst.Email)
		})
	}
}
