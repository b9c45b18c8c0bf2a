package domain

import (
	"github.com/x-xyz/hbarmarket/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

type WebResourceUseCase interface {
	Get(ctx.Ctx, string) ([]byte, error)
	GetJson(ctx.Ctx, string) ([]byte, error)
	// GatewayUrl rewrites content addressed uris to an http gateway url.
	GatewayUrl(string) string
}
