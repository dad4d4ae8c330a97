package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/weddingsite/internal/app/models/dto"
	"github.com/yigit/weddingsite/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.APIResponse {
	t.Helper()
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   apperrors.ErrorCode
	}{
		{"not found", apperrors.NewResourceNotFoundError("upload 3 not found"), http.StatusNotFound, apperrors.CodeNotFound},
		{"bad request", apperrors.NewBadRequestError("invalid id"), http.StatusBadRequest, apperrors.CodeValidationFailed},
		{"quota", apperrors.NewHTTPError(http.StatusTooManyRequests, "slow down", apperrors.CodeQuotaExceeded), http.StatusTooManyRequests, apperrors.CodeQuotaExceeded},
		{"upstream forbidden", apperrors.NewHTTPError(http.StatusForbidden, "forbidden by api", apperrors.CodeUnknown), http.StatusForbidden, apperrors.CodeUpstream},
		{"upstream conflict", apperrors.NewHTTPError(http.StatusConflict, "song already exists", apperrors.CodeUnknown), http.StatusConflict, apperrors.CodeUpstream},
		{"upstream bad gateway", apperrors.NewHTTPError(http.StatusBadGateway, "", apperrors.CodeUnknown), http.StatusBadGateway, apperrors.CodeUpstream},
		{"upstream internal", apperrors.NewHTTPError(http.StatusInternalServerError, "db down", apperrors.CodeInternal), http.StatusBadGateway, apperrors.CodeUpstream},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, apperrors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeResponse(t, w)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, resp.Error.Message, resp.Message)
		})
	}
}

func TestHandleAPIErrorUpstreamMessages(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(c, fmt.Errorf("add song: %w", apperrors.NewHTTPError(http.StatusConflict, "song already exists", apperrors.CodeUnknown)))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "song already exists", decodeResponse(t, w).Error.Message)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(c, apperrors.NewHTTPError(http.StatusServiceUnavailable, "pool exhausted at 10.0.0.4", apperrors.CodeUnknown))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.4")
}

func TestHandleAPIErrorHidesInternalMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, errors.New("password=hunter2"))
	assert.NotContains(t, w.Body.String(), "hunter2")
}

type greetingRequest struct {
	Name string `json:"name" validate:"required,max=5"`
}

func newValidationRouter() *gin.Engine {
	router := gin.New()
	router.POST("/greet", ValidateRequest[greetingRequest](), func(c *gin.Context) {
		req, ok := ValidatedBody[greetingRequest](c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, dto.NewDataResponse(req.Name))
	})
	return router
}

func TestValidateRequest(t *testing.T) {
	router := newValidationRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/greet", strings.NewReader(`{"name":"Ada"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ada", decodeResponse(t, w).Data)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/greet", strings.NewReader(`{"name":"Bartholomew"}`)))
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	require.Len(t, resp.Error.Fields, 1)
	assert.Equal(t, "name", resp.Error.Fields[0].Field)
	assert.Equal(t, "name must be at most 5", resp.Error.Fields[0].Message)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/greet", strings.NewReader(`{not json`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
