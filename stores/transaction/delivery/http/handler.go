package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/delivery"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/txn"
	"github.com/x-xyz/hbarmarket/middleware"
)

type handler struct {
	tu txn.UseCase
}

func New(e *echo.Echo, tu txn.UseCase) {
	h := &handler{tu: tu}
	g := e.Group("/tx")
	g.GET("/:hash", h.get, middleware.IsValidTxHash("hash"))
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	o, err := h.tu.Get(ctx, domain.TxHash(c.Param("hash")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, o)
}
