package http

import (
	"math/big"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/delivery"
	"github.com/x-xyz/hbarmarket/base/units"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/listing"
	"github.com/x-xyz/hbarmarket/middleware"
	authMiddleware "github.com/x-xyz/hbarmarket/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.UseCase
}

func New(e *echo.Echo, lu listing.UseCase, am *authMiddleware.AuthMiddleware) {
	h := &handler{listing: lu}
	g := e.Group("/listings")
	g.GET("", h.list)
	g.GET("/mine", h.mine)
	g.GET("/:listingId", h.get, middleware.IsValidId("listingId"))
	g.POST("", h.create, am.Auth(), am.IsOperator())
	g.POST("/:listingId/buy", h.buy, middleware.IsValidId("listingId"), am.Auth(), am.IsOperator())
	g.POST("/:listingId/cancel", h.cancel, middleware.IsValidId("listingId"), am.Auth(), am.IsOperator())
}

func listingId(c echo.Context) *big.Int {
	// validated by IsValidId
	id, _ := new(big.Int).SetString(c.Param("listingId"), 10)
	return id
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	views, err := h.listing.List(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, views)
}

func (h *handler) mine(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	views, err := h.listing.Mine(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, views)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	v, err := h.listing.Get(ctx, listingId(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	q := c.QueryParam("quantity")
	if len(q) == 0 {
		return delivery.MakeJsonResp(c, http.StatusOK, v)
	}
	quantity, err := domain.TokenId(q).ToBigInt()
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	total, err := listing.TotalPrice(v.PricePerToken, quantity, v.Quantity)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res := struct {
		*listing.View
		RequestedQuantity string `json:"requestedQuantity"`
		Total             string `json:"total"`
		TotalWei          string `json:"totalWei"`
	}{
		View:              v,
		RequestedQuantity: quantity.String(),
		Total:             units.FormatNative(total),
		TotalWei:          total.String(),
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := listing.CreateParams{}
	if err := c.Bind(&p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	res, err := h.listing.Create(ctx, p)
	if err != nil {
		ctx.WithField("err", err).Warn("listing.Create failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Quantity string `json:"quantity" validate:"omitempty,uintstr"`
		Wait     bool   `json:"wait"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
	}

	bp := listing.BuyParams{ListingId: listingId(c), Wait: p.Wait}
	if len(p.Quantity) > 0 {
		q, err := domain.TokenId(p.Quantity).ToBigInt()
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		bp.Quantity = q
	}

	o, err := h.listing.Buy(ctx, bp)
	if err != nil {
		ctx.WithField("err", err).Warn("listing.Buy failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, o)
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Wait bool `json:"wait"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	o, err := h.listing.Cancel(ctx, listingId(c), p.Wait)
	if err != nil {
		ctx.WithField("err", err).Warn("listing.Cancel failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, o)
}
