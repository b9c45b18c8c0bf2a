package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/delivery"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/approval"
	"github.com/x-xyz/hbarmarket/middleware"
	authMiddleware "github.com/x-xyz/hbarmarket/stores/auth/delivery/http/middleware"
)

type handler struct {
	approval approval.UseCase
}

func New(e *echo.Echo, au approval.UseCase, am *authMiddleware.AuthMiddleware) {
	h := &handler{approval: au}
	g := e.Group("/approval")
	g.GET("/:contract", h.check, middleware.IsValidAddress("contract"))
	g.POST("/:contract", h.approve, middleware.IsValidAddress("contract"), am.Auth(), am.IsOperator())
}

func (h *handler) check(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	g, err := h.approval.Check(ctx, domain.Address(c.Param("contract")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, g)
}

func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	res, err := h.approval.Approve(ctx, domain.Address(c.Param("contract")))
	if err != nil {
		ctx.WithField("err", err).Warn("approval.Approve failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
