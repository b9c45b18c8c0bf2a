package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	bCtx "github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/service/cache"
)

type MetadataUseCaseCfg struct {
	WebResource domain.WebResourceUseCase
	// Cache is optional. Metadata behind a token uri is treated as immutable.
	Cache cache.Service
}

type metadataUseCase struct {
	webResource domain.WebResourceUseCase
	cache       cache.Service
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	return &metadataUseCase{
		webResource: cfg.WebResource,
		cache:       cfg.Cache,
	}
}

func (u *metadataUseCase) GetFromUrl(c bCtx.Ctx, rawUrl string) (*domain.NftMetadata, error) {
	rawUrl = strings.TrimSpace(rawUrl)
	if rawUrl == "" {
		return nil, domain.ErrBadParamInput
	}
	if u.cache == nil {
		return u.fetch(c, rawUrl)
	}

	res := &domain.NftMetadata{}
	if err := u.cache.GetByFunc(c, rawUrl, res, func() (interface{}, error) {
		return u.fetch(c, rawUrl)
	}); err != nil {
		return nil, err
	}
	return res, nil
}

func (u *metadataUseCase) fetch(c bCtx.Ctx, rawUrl string) (*domain.NftMetadata, error) {
	data, err := u.webResource.GetJson(c, rawUrl)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if err := json.Unmarshal(data, &fields); err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Warn("metadata is not a json object")
		return nil, domain.ErrInvalidJsonFormat
	}

	return &domain.NftMetadata{
		Name:        stringField(fields, "name"),
		Description: stringField(fields, "description"),
		Image:       stringField(fields, "image"),
	}, nil
}

// stringField reads key leniently, minted metadata sometimes has numeric names.
func stringField(fields map[string]interface{}, key string) string {
	switch v := fields[key].(type) {
	case string:
		return v
	case float64, bool:
		return fmt.Sprint(v)
	}
	return ""
}
