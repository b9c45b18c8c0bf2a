package usecase

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	bCtx "github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/domain"
)

const (
	ipfsScheme = "ipfs://"
	arScheme   = "ar://"

	DefaultIpfsGateway    = "https://ipfs.io/ipfs"
	DefaultArweaveGateway = "https://arweave.net"
)

var dedicatedPinataRe = regexp.MustCompile(`^https://[^/]+\.mypinata\.cloud/ipfs/`)

type WebResourceUseCaseCfg struct {
	HttpReader domain.WebResourceReaderRepository
	// IpfsReaders are tried in order, e.g. a local node api then a public gateway.
	IpfsReaders    []domain.WebResourceReaderRepository
	DataUriReader  domain.WebResourceReaderRepository
	ArUriReader    domain.WebResourceReaderRepository
	IpfsGateway    string
	ArweaveGateway string
}

type webResourceUseCase struct {
	httpReader     domain.WebResourceReaderRepository
	ipfsReaders    []domain.WebResourceReaderRepository
	dataUriReader  domain.WebResourceReaderRepository
	arUriReader    domain.WebResourceReaderRepository
	ipfsGateway    string
	arweaveGateway string
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	u := &webResourceUseCase{
		httpReader:     cfg.HttpReader,
		ipfsReaders:    cfg.IpfsReaders,
		dataUriReader:  cfg.DataUriReader,
		arUriReader:    cfg.ArUriReader,
		ipfsGateway:    strings.TrimSuffix(cfg.IpfsGateway, "/"),
		arweaveGateway: strings.TrimSuffix(cfg.ArweaveGateway, "/"),
	}
	if u.ipfsGateway == "" {
		u.ipfsGateway = DefaultIpfsGateway
	}
	if u.arweaveGateway == "" {
		u.arweaveGateway = DefaultArweaveGateway
	}
	return u
}

func (u *webResourceUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	return u.get(c, rawUrl)
}

func (u *webResourceUseCase) GetJson(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	data, err := u.get(c, rawUrl)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		c.WithFields(log.Fields{
			"url": rawUrl,
		}).Warn("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}

	return data, nil
}

// GatewayUrl rewrites ipfs:// and ar:// uris to their http gateway. Other
// uris are returned unchanged.
func (u *webResourceUseCase) GatewayUrl(uri string) string {
	switch {
	case strings.HasPrefix(uri, ipfsScheme):
		return u.ipfsGateway + "/" + ipfsPath(uri)
	case strings.HasPrefix(uri, arScheme):
		return u.arweaveGateway + "/" + strings.TrimPrefix(uri, arScheme)
	}
	return uri
}

func (u *webResourceUseCase) get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Warn("failed to parse url")
		return nil, domain.ErrUnsupportedSchema
	}

	switch pUrl.Scheme {
	case "https", "http":
		data, err = u.httpReader.Get(c, rawUrl)
	case "ipfs":
		data, err = u.getIpfs(c, ipfsPath(rawUrl))
	case "data":
		data, err = u.dataUriReader.Get(c, rawUrl)
	case "ar":
		data, err = u.arUriReader.Get(c, rawUrl)
	default:
		return nil, domain.ErrUnsupportedSchema
	}

	if err == nil {
		return data, nil
	}

	// pinned content behind a slow or dead gateway is retried through our own readers
	if pUrl.Scheme == "https" {
		if ipfsUrl := getIpfsUrl(rawUrl); len(ipfsUrl) > 0 {
			c.WithFields(log.Fields{
				"url":     rawUrl,
				"ipfsUrl": ipfsUrl,
			}).Info("falling back to ipfs")
			return u.get(c, ipfsUrl)
		}
	}

	c.WithFields(log.Fields{
		"schema": pUrl.Scheme,
		"url":    rawUrl,
		"err":    err,
	}).Warn("failed to fetch")
	return nil, err
}

func (u *webResourceUseCase) getIpfs(c bCtx.Ctx, path string) ([]byte, error) {
	if len(u.ipfsReaders) == 0 {
		return nil, domain.ErrUnsupportedSchema
	}
	var err error
	for _, r := range u.ipfsReaders {
		var data []byte
		if data, err = r.Get(c, path); err == nil {
			return data, nil
		}
	}
	return nil, err
}

func ipfsPath(uri string) string {
	p := strings.TrimPrefix(uri, ipfsScheme)
	// some minters write ipfs://ipfs/<cid>
	return strings.TrimPrefix(p, "ipfs/")
}

func getIpfsUrl(url string) string {
	fixedPrefix := []string{
		"https://gateway.pinata.cloud/ipfs/",
		"https://ipfs.io/ipfs/",
		"https://cloudflare-ipfs.com/ipfs/",
		"https://hashpack.b-cdn.net/ipfs/",
	}
	for _, p := range fixedPrefix {
		if strings.HasPrefix(url, p) {
			return strings.Replace(url, p, ipfsScheme, 1)
		}
	}
	if dedicatedPinataRe.MatchString(url) {
		return dedicatedPinataRe.ReplaceAllLiteralString(url, ipfsScheme)
	}
	return ""
}
