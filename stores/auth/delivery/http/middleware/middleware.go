package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/delivery"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/domain"
)

const addressKey = "address"

// AuthMiddleware gates write routes behind a jwt issued by the sign-in flow.
// Only the operator, the account the server signs with, may submit.
type AuthMiddleware struct {
	auth     domain.AuthUsecase
	operator domain.Address
}

func New(auth domain.AuthUsecase, operator domain.Address) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, operator: operator.ToLower()}
}

// Address returns the account Auth authenticated.
func Address(c echo.Context) (domain.Address, bool) {
	a, ok := c.Get(addressKey).(domain.Address)
	return a, ok
}

// Auth requires "Authorization: Bearer <jwt>". A missing, malformed or expired
// token is answered with 401 in the json envelope.
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: m.validate,
		ErrorHandler: func(err error, c echo.Context) error {
			return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrUnauthorized)
		},
	})
}

// IsOperator must run after Auth.
func (m *AuthMiddleware) IsOperator() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if a, ok := Address(c); !ok || !m.operator.Equals(a) {
				return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrUnauthorized)
			}
			return next(c)
		}
	}
}

func (m *AuthMiddleware) validate(token string, c echo.Context) (bool, error) {
	cc := c.Get("ctx").(ctx.Ctx)
	a, err := m.auth.ParseToken(cc, token)
	if err != nil {
		cc.WithField("err", err).Warn("auth.ParseToken failed")
		return false, err
	}
	address := domain.Address(a).ToLower()
	c.Set(addressKey, address)
	c.Set("ctx", ctx.WithFields(cc, log.Fields{"account": address}))
	return true, nil
}
