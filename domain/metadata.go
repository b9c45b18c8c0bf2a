package domain

import (
	"github.com/x-xyz/hbarmarket/base/ctx"
)

// NftMetadata is the optional subset of token metadata that gets displayed.
type NftMetadata struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type MetadataUseCase interface {
	GetFromUrl(ctx.Ctx, string) (*NftMetadata, error)
}
