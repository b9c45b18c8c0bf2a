package repository

import (
	"encoding/base64"
	"mime"
	"net/url"
	"strings"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
	"golang.org/x/xerrors"
)

const dataUriScheme = "data:"

var ErrEmptyDataUri = xerrors.New("data uri has no payload")

type dataUriReaderRepo struct{}

// NewDataUriReaderRepo decodes on-chain metadata of the form
// data:[<mediatype>][;base64],<data>.
func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return dataUriReaderRepo{}
}

func (dataUriReaderRepo) Get(_ ctx.Ctx, uri string) ([]byte, error) {
	rest := strings.TrimPrefix(uri, dataUriScheme)
	if rest == uri {
		return nil, xerrors.Errorf("not a data uri: %w", domain.ErrUnsupportedSchema)
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok || payload == "" {
		return nil, ErrEmptyDataUri
	}

	isBase64 := false
	if h := strings.TrimSuffix(header, ";base64"); h != header {
		isBase64 = true
		header = h
	}
	// ";utf8" is accepted as written by many minters
	if header != "" && !strings.Contains(header, ";utf8") {
		if _, _, err := mime.ParseMediaType(header); err != nil {
			return nil, xerrors.Errorf("data uri media type %q: %w", header, err)
		}
	}

	if isBase64 {
		// padding is optional
		if b, err := base64.StdEncoding.DecodeString(payload); err == nil {
			return b, nil
		}
		return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
	}
	if unescaped, err := url.PathUnescape(payload); err == nil {
		return []byte(unescaped), nil
	}
	return []byte(payload), nil
}
