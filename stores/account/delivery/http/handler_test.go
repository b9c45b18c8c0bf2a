package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/account"
	"github.com/x-xyz/hbarmarket/domain/account/mocks"
	"github.com/x-xyz/hbarmarket/middleware"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		name   string
		method string
		info   *account.Info
		err    error
		status int
		body   string
	}{
		{
			name:   "ok",
			method: http.MethodGet,
			info:   &account.Info{Address: "0x1111111111111111111111111111111111111111", ChainId: 296, Balance: "1.5"},
			status: http.StatusOK,
			body:   `"balance":"1.5"`,
		},
		{
			name:   "head",
			method: http.MethodHead,
			info:   &account.Info{},
			status: http.StatusOK,
		},
		{
			name:   "balance unavailable",
			method: http.MethodGet,
			err:    domain.ErrReadFailed,
			status: http.StatusBadGateway,
			body:   domain.ErrReadFailed.Error(),
		},
		{
			name:   "unexpected",
			method: http.MethodGet,
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mocks.NewUsecase(t)
			uc.On("Get", mock.Anything).Return(tt.info, tt.err).Once()

			e := echo.New()
			e.Use(middleware.InitMiddleware().AddContext())
			New(e, uc)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, "/account", nil))
			require.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Contains(t, rec.Body.String(), tt.body)
			}
		})
	}
}
