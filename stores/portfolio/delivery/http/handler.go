package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/delivery"
	bValidator "github.com/x-xyz/hbarmarket/base/validator"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/portfolio"
)

type handler struct {
	portfolio portfolio.UseCase
	owner     domain.Address
}

// New serves scans of owner, the connected account, unless ?owner= is given.
func New(e *echo.Echo, pu portfolio.UseCase, owner domain.Address) {
	h := &handler{portfolio: pu, owner: owner}
	e.GET("/portfolio", h.scan)
}

func (h *handler) scan(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Owner    string `query:"owner"`
		Contract string `query:"contract"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	owner := h.owner
	if len(p.Owner) > 0 {
		if !bValidator.IsValidAddress(p.Owner) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
		}
		owner = domain.Address(p.Owner).ToLower()
	}

	var tokens []portfolio.OwnedToken
	var err error
	if len(p.Contract) > 0 {
		if !bValidator.IsValidAddress(p.Contract) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
		}
		tokens, err = h.portfolio.Scan(ctx, owner, domain.Address(p.Contract).ToLower())
	} else {
		tokens, err = h.portfolio.ScanAll(ctx, owner)
	}
	if err != nil {
		ctx.WithField("err", err).Error("portfolio scan failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, tokens)
}
