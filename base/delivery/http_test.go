package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/hbarmarket/domain"
)

func TestMakeJsonResp(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		data       interface{}
		wantStatus int
		wantBody   JsonResponse
	}{
		{"ok", http.StatusOK, map[string]string{"a": "b"}, http.StatusOK, JsonResponse{map[string]interface{}{"a": "b"}, JsonResponseStatusSuccess}},
		{"not found", http.StatusInternalServerError, domain.NewUserError(domain.ErrNotFound, "Listing not found", nil), http.StatusNotFound, JsonResponse{"Listing not found", JsonResponseStatusFail}},
		{"missing fields", http.StatusInternalServerError, domain.ErrMissingFields, http.StatusBadRequest, JsonResponse{"Please fill in all fields", JsonResponseStatusFail}},
		{"unsupported currency", http.StatusInternalServerError, domain.ErrUnsupportedCurrency, http.StatusConflict, JsonResponse{"Only native token (HBAR) purchases are supported", JsonResponseStatusFail}},
		{"raw", http.StatusInternalServerError, errors.New("dial tcp: refused"), http.StatusInternalServerError, JsonResponse{"dial tcp: refused", JsonResponseStatusFail}},
		{"read failed", http.StatusInternalServerError, domain.NewUserError(domain.ErrReadFailed, "Failed to read balance", errors.New("eof")), http.StatusBadGateway, JsonResponse{"Failed to read balance", JsonResponseStatusFail}},
		{"unauthorized", http.StatusInternalServerError, domain.ErrUnauthorized, http.StatusUnauthorized, JsonResponse{"Only the connected account may sign in", JsonResponseStatusFail}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, MakeJsonResp(c, tt.status, tt.data))
			require.Equal(t, tt.wantStatus, rec.Code)

			var body JsonResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tt.wantBody, body)
		})
	}
}

func TestErrorStatusFallback(t *testing.T) {
	require.Equal(t, http.StatusTeapot, ErrorStatus(errors.New("x"), http.StatusTeapot))
	require.Equal(t, http.StatusBadRequest, ErrorStatus(domain.ErrInvalidAddress, http.StatusOK))
}
