package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body.Error
}

func TestJSON(t *testing.T) {
	tests := []struct {
		name string
		code int
		data any
		body string
	}{
		{"map", http.StatusOK, map[string]string{"summary": "Cats sleep."}, `{"summary":"Cats sleep."}`},
		{"struct", http.StatusCreated, struct {
			Indices []int `json:"indices"`
		}{Indices: []int{0, 3}}, `{"indices":[0,3]}`},
		{"nil", http.StatusNoContent, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.body, strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()

	assert.NotPanics(t, func() { JSON(w, http.StatusOK, make(chan int)) })
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusConflict, errors.New("raw message"))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "raw message", decodeError(t, w))
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		err     error
		wantMsg string
	}{
		{"validation message", http.StatusBadRequest, errors.New("text or url is required"), "text or url is required"},
		{"too large", http.StatusRequestEntityTooLarge, errors.New("document too large: 9 characters exceeds limit of 5"), "document too large: 9 characters exceeds limit of 5"},
		{"must be", http.StatusBadRequest, errors.New("compression_ratio must be between 0 and 1"), "compression_ratio must be between 0 and 1"},
		{"unknown client error", http.StatusBadRequest, errors.New("json: cannot unmarshal number"), "bad request"},
		{"server error hides detail", http.StatusInternalServerError, errors.New("invalid state in ranker"), "internal server error"},
		{"bad gateway hides detail", http.StatusBadGateway, errors.New("dial tcp 10.0.0.1:80: refused"), "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			SafeError(w, tt.code, tt.err)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, w))
		})
	}
}

func TestSafeError_Nil(t *testing.T) {
	w := httptest.NewRecorder()
	SafeError(w, http.StatusBadRequest, nil)

	assert.Zero(t, w.Body.Len())
}

func TestAppError(t *testing.T) {
	inner := errors.New("field validation failed")

	assert.Equal(t, "field validation failed", NewAppError(400, "Invalid input", inner).Error())
	assert.Equal(t, "Invalid input", NewAppError(400, "Invalid input", nil).Error())
	assert.Same(t, inner, errors.Unwrap(NewAppError(500, "oops", inner)))
	assert.Nil(t, errors.Unwrap(NewAppError(400, "bad", nil)))
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "app error with cause",
			code:     http.StatusInternalServerError,
			err:      NewAppError(http.StatusBadGateway, "failed to fetch document from url", errors.New("HTTP 503")),
			wantCode: http.StatusBadGateway,
			wantMsg:  "failed to fetch document from url",
		},
		{
			name:     "wrapped app error",
			code:     http.StatusInternalServerError,
			err:      fmt.Errorf("batch item 2: %w", NewAppError(http.StatusGatewayTimeout, "request timed out", nil)),
			wantCode: http.StatusGatewayTimeout,
			wantMsg:  "request timed out",
		},
		{
			name:     "plain error falls back to SafeError",
			code:     http.StatusBadRequest,
			err:      errors.New("layout is invalid"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "layout is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.code, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, w))
		})
	}
}
