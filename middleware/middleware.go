package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/delivery"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/base/metrics"
	"github.com/x-xyz/hbarmarket/base/validator"
	"github.com/x-xyz/hbarmarket/domain"
)

// GoMiddleware holds the shared request plumbing: ctx injection and access logs.
type GoMiddleware struct {
	met metrics.Service
}

func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{met: metrics.New("http")}
}

// AddContext puts a ctx.Ctx tagged with the request id under "ctx".
// Run it after echo's RequestID middleware.
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			c.Set("ctx", ctx.WithRequestId(ctx.Background(), id))
			return next(c)
		}
	}
}

// ResponseLogger writes one access log line per request and times it by route.
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			elapsed := time.Since(start)
			m.met.BumpHistogram("request.ms", float64(elapsed.Milliseconds()),
				"method", req.Method, "path", c.Path(), "status", http.StatusText(res.Status))

			fields := log.Fields{
				"ms":         float64(elapsed.Microseconds()) / 1000,
				"httpStatus": res.Status,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"route":      c.Path(),
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
			}
			if err != nil {
				fields["err"] = err
			}

			logger := log.Log()
			if cc, ok := c.Get("ctx").(ctx.Ctx); ok {
				logger = cc.Logger
			}
			if res.Status >= http.StatusInternalServerError {
				logger.WithFields(fields).Error("response")
			} else {
				logger.WithFields(fields).Info("response")
			}
			return nil
		}
	}
}

// validParam rejects the request with err unless ok accepts path param name.
func validParam(name string, ok func(string) bool, err error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !ok(c.Param(name)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
			}
			return next(c)
		}
	}
}

func IsValidAddress(param string) echo.MiddlewareFunc {
	return validParam(param, validator.IsValidAddress, domain.ErrInvalidAddress)
}

func IsValidTxHash(param string) echo.MiddlewareFunc {
	return validParam(param, validator.IsValidTxHash, domain.ErrBadParamInput)
}

// IsValidId accepts non-negative decimal integers of any size.
func IsValidId(param string) echo.MiddlewareFunc {
	return validParam(param, validator.IsValidUintString, domain.ErrInvalidNumberFormat)
}
