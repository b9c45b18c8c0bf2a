package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/delivery"
	"github.com/x-xyz/hbarmarket/domain/account"
)

type accountHandler struct {
	uc account.Usecase
}

// New serves the connected account summary under /account.
func New(e *echo.Echo, uc account.Usecase) {
	h := &accountHandler{uc: uc}
	g := e.Group("/account")
	g.GET("", h.summary)
	g.HEAD("", h.summary)
}

func (h *accountHandler) summary(c echo.Context) error {
	info, err := h.uc.Get(c.Get("ctx").(ctx.Ctx))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if c.Request().Method == http.MethodHead {
		return c.NoContent(http.StatusOK)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, info)
}
