package repository

import (
	"io"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/domain"
	"golang.org/x/xerrors"
)

// maxBodySize caps a single metadata or image fetch.
const maxBodySize = 10 << 20

var (
	ErrBadStatus    = xerrors.New("unexpected http status")
	ErrBodyTooLarge = xerrors.New("response body too large")
)

type fetcher struct {
	client  *http.Client
	timeout time.Duration
	headers map[string]string
}

func newFetcher(client *http.Client, timeout time.Duration, headers map[string]string) fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return fetcher{client: client, timeout: timeout, headers: headers}
}

// fetch GETs url and returns the body of a 200 response. Bodies over
// maxBodySize are rejected rather than truncated.
func (f *fetcher) fetch(c bCtx.Ctx, url string) ([]byte, error) {
	tc, cancel := bCtx.WithTimeout(c, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(tc, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		c.WithFields(log.Fields{"url": url, "err": err}).Warn("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.WithFields(log.Fields{"url": url, "status": resp.StatusCode}).Warn("unexpected status")
		return nil, xerrors.Errorf("GET %s: %d: %w", url, resp.StatusCode, ErrBadStatus)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxBodySize {
		return nil, xerrors.Errorf("GET %s: %w", url, ErrBodyTooLarge)
	}
	return body, nil
}

type httpReaderRepo struct {
	fetcher
}

// NewHttpReaderRepo reads plain http(s) urls, sending headers on every request.
func NewHttpReaderRepo(client *http.Client, timeout time.Duration, headers map[string]string) domain.WebResourceReaderRepository {
	return &httpReaderRepo{newFetcher(client, timeout, headers)}
}

func (r *httpReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	return r.fetch(c, url)
}
