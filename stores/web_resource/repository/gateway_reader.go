package repository

import (
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
	"golang.org/x/xerrors"
)

type gatewayReaderRepo struct {
	fetcher
	gateway string
	scheme  string
}

// NewGatewayReaderRepo reads content addressed paths through an http gateway,
// e.g. "<cid>/3.json" through https://ipfs.io/ipfs. When scheme is set, such as
// "ar://", inputs must carry it and it is stripped before joining.
func NewGatewayReaderRepo(client *http.Client, gateway, scheme string, timeout time.Duration) domain.WebResourceReaderRepository {
	return &gatewayReaderRepo{
		fetcher: newFetcher(client, timeout, nil),
		gateway: strings.TrimSuffix(gateway, "/"),
		scheme:  scheme,
	}
}

func (r *gatewayReaderRepo) Get(c bCtx.Ctx, path string) ([]byte, error) {
	if r.scheme != "" {
		if !strings.HasPrefix(path, r.scheme) {
			return nil, xerrors.Errorf("%q is not a %s uri: %w", path, r.scheme, domain.ErrUnsupportedSchema)
		}
		path = strings.TrimPrefix(path, r.scheme)
	}
	return r.fetch(c, r.gateway+"/"+strings.TrimPrefix(path, "/"))
}
