package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/portfolio"
	"github.com/x-xyz/hbarmarket/domain/portfolio/mocks"
	"github.com/x-xyz/hbarmarket/middleware"
)

const (
	me       = domain.Address("0x1111111111111111111111111111111111111111")
	contract = domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
)

func TestScan(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		setup  func(*mocks.UseCase)
		status int
	}{
		{
			name:  "all contracts of connected account",
			query: "",
			setup: func(m *mocks.UseCase) {
				m.On("ScanAll", mock.Anything, me).Return([]portfolio.OwnedToken{{TokenId: "3"}}, nil).Once()
			},
			status: http.StatusOK,
		},
		{
			name:  "one contract",
			query: "?contract=0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
			setup: func(m *mocks.UseCase) {
				m.On("Scan", mock.Anything, me, contract).Return([]portfolio.OwnedToken{}, nil).Once()
			},
			status: http.StatusOK,
		},
		{
			name:   "invalid owner",
			query:  "?owner=0x12",
			setup:  func(*mocks.UseCase) {},
			status: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pu := mocks.NewUseCase(t)
			tt.setup(pu)

			e := echo.New()
			e.Use(middleware.InitMiddleware().AddContext())
			New(e, pu, me)

			req := httptest.NewRequest(http.MethodGet, "/portfolio"+tt.query, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			require.Equal(t, tt.status, rec.Code)
		})
	}
}
