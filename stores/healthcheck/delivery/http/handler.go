package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/delivery"
	hcdomain "github.com/x-xyz/hbarmarket/domain/healthcheck"
)

type handler struct {
	hc hcdomain.HealthCheckUsecase
}

// New registers GET /health. The body is the probe report in both the healthy
// and the 503 case.
func New(e *echo.Echo, hc hcdomain.HealthCheckUsecase) {
	h := &handler{hc: hc}
	e.GET("/health", h.check)
}

func (h *handler) check(c echo.Context) error {
	r, err := h.hc.Check(c.Get("ctx").(ctx.Ctx))
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, delivery.JsonResponse{Data: r, Status: delivery.JsonResponseStatusFail})
	}
	return delivery.MakeJsonResp(c, http.StatusOK, r)
}
