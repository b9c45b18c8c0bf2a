package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/hbarmarket/base/ctx"
	mDomain "github.com/x-xyz/hbarmarket/domain/mocks"
)

type authMiddlewareSuite struct {
	suite.Suite

	auth *mDomain.AuthUsecase
	m    *AuthMiddleware
	e    *echo.Echo
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(authMiddlewareSuite))
}

func (s *authMiddlewareSuite) SetupTest() {
	s.auth = mDomain.NewAuthUsecase(s.T())
	s.m = New(s.auth, "0xAbC")
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	s.e.GET("/", func(c echo.Context) error {
		a, ok := Address(c)
		s.True(ok)
		return c.String(http.StatusOK, string(a))
	}, s.m.Auth(), s.m.IsOperator())
}

func (s *authMiddlewareSuite) do(token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *authMiddlewareSuite) TestOperator() {
	s.auth.On("ParseToken", mock.Anything, "good").Return("0xabc", nil).Once()
	rec := s.do("good")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("0xabc", rec.Body.String())
}

func (s *authMiddlewareSuite) TestNotOperator() {
	s.auth.On("ParseToken", mock.Anything, "other").Return("0xdef", nil).Once()
	rec := s.do("other")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *authMiddlewareSuite) TestInvalidToken() {
	s.auth.On("ParseToken", mock.Anything, "bad").Return("", errors.New("token is expired")).Once()
	rec := s.do("bad")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *authMiddlewareSuite) TestMissingToken() {
	rec := s.do("")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), `"status":"fail"`)
}

func (s *authMiddlewareSuite) TestChecksumCaseToken() {
	s.auth.On("ParseToken", mock.Anything, "mixed").Return("0xABC", nil).Once()
	rec := s.do("mixed")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("0xabc", rec.Body.String())
}
