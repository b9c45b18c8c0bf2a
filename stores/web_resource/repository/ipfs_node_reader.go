package repository

import (
	"io"
	"strings"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	bCtx "github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/domain"
	"golang.org/x/xerrors"
)

type ipfsNodeReaderRepo struct {
	shell   *ipfsapi.Shell
	timeout time.Duration
}

// NewIpfsNodeReaderRepo cats "<cid>[/path]" from an ipfs node api such as
// localhost:5001. Content pinned on the node is served without a gateway hop.
func NewIpfsNodeReaderRepo(shell *ipfsapi.Shell, timeout time.Duration) domain.WebResourceReaderRepository {
	return &ipfsNodeReaderRepo{shell: shell, timeout: timeout}
}

func (r *ipfsNodeReaderRepo) Get(c bCtx.Ctx, path string) ([]byte, error) {
	path = "/ipfs/" + strings.TrimPrefix(strings.TrimPrefix(path, "/"), "ipfs/")

	tc, cancel := bCtx.WithTimeout(c, r.timeout)
	defer cancel()

	resp, err := r.shell.Request("cat", path).Send(tc)
	if err != nil {
		c.WithFields(log.Fields{"path": path, "err": err}).Warn("ipfs cat failed")
		return nil, err
	}
	defer resp.Close()
	if resp.Error != nil {
		c.WithFields(log.Fields{"path": path, "err": resp.Error.Message}).Warn("ipfs cat rejected")
		return nil, resp.Error
	}

	body, err := io.ReadAll(io.LimitReader(resp.Output, maxBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxBodySize {
		return nil, xerrors.Errorf("ipfs cat %s: %w", path, ErrBodyTooLarge)
	}
	return body, nil
}
