package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/delivery"
	"github.com/x-xyz/hbarmarket/base/metrics"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/collection"
	"github.com/x-xyz/hbarmarket/middleware"
	authMiddleware "github.com/x-xyz/hbarmarket/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	collection collection.UseCase
}

func New(e *echo.Echo, cu collection.UseCase, am *authMiddleware.AuthMiddleware) {
	met = metrics.New("collection")

	h := &handler{collection: cu}

	g := e.Group("/collections")
	g.GET("/:contract", h.connect)
	g.POST("/factory", h.deployFactory, am.Auth(), am.IsOperator())
	g.POST("/erc1155", h.deployGameItems, am.Auth(), am.IsOperator())
	g.POST("/nft", h.deployNft, am.Auth(), am.IsOperator())
	g.POST("/:contract/mint", h.mint, middleware.IsValidAddress("contract"), am.Auth(), am.IsOperator())
}

// connect validates the raw input itself so its messages reach the caller.
func (h *handler) connect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	res, err := h.collection.Connect(ctx, c.Param("contract"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) deployFactory(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	res, err := h.collection.DeployFactory(ctx)
	return h.deployed(c, "factory", res, err)
}

func (h *handler) deployGameItems(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	res, err := h.collection.DeployGameItems(ctx)
	return h.deployed(c, "gameItems", res, err)
}

func (h *handler) deployNft(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := collection.NftParams{}
	if err := c.Bind(&p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	res, err := h.collection.DeployNft(ctx, p)
	return h.deployed(c, "nft", res, err)
}

func (h *handler) deployed(c echo.Context, kind string, res *collection.DeployResult, err error) error {
	if err != nil {
		met.BumpSum("deploy.err", 1, "kind", kind)
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	met.BumpSum("deploy.count", 1, "kind", kind)
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	res, err := h.collection.Mint(ctx, domain.Address(c.Param("contract")))
	if err != nil {
		met.BumpSum("mint.err", 1)
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	met.BumpSum("mint.count", 1)
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}
