package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestBaseHandler_HandleError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"not found", shared.NewDomainError("NOT_FOUND", "Store not found"), http.StatusNotFound, "NOT_FOUND"},
		{"already exists maps to bad request", shared.NewDomainError("ALREADY_EXISTS", "dup"), http.StatusBadRequest, "ALREADY_EXISTS"},
		{"invalid input", shared.NewDomainError("INVALID_INPUT", "bad"), http.StatusBadRequest, "INVALID_INPUT"},
		{"concurrency conflict", shared.ErrConcurrencyConflict, http.StatusConflict, "CONCURRENCY_CONFLICT"},
		{"unknown error is internal", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()
			h := BaseHandler{}

			h.HandleError(c, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp.Error.Code)
		})
	}
}

func TestBaseHandler_ErrorIncludesRequestID(t *testing.T) {
	c, w := newTestContext()
	c.Set(RequestIDKey, "req-123")
	h := BaseHandler{}

	h.NotFound(c, "Store not found")

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-123", resp.Error.RequestID)
	assert.Equal(t, "Store not found", resp.Error.Message)
}

func TestParseStoreID(t *testing.T) {
	c, _ := newTestContext()
	c.Params = gin.Params{{Key: "storeId", Value: "not-a-uuid"}}

	_, ok := parseStoreID(c)
	assert.False(t, ok)
}
