package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
)

const metadataJson = `{"name":"Game Item #3","description":"A shield","image":"ipfs://QmRRPWG96cmgTn2qSzjwr2qvfNEuhunv6FNeMFGa9bx6mQ"}`

type readerSuite struct {
	suite.Suite

	server *httptest.Server
	paths  []string
	ctx    bCtx.Ctx
}

func TestReaderSuite(t *testing.T) {
	suite.Run(t, new(readerSuite))
}

func (s *readerSuite) SetupTest() {
	s.paths = nil
	s.ctx = bCtx.Background()
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.paths = append(s.paths, r.URL.Path)
		switch r.URL.Path {
		case "/ipfs/QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/3", "/arweave/eXcwlbsV1BiRGCsGKXa60Mj0i/3.json", "/metadata/3.json":
			if r.Header.Get("X-Project") != "" {
				w.Header().Set("X-Echo", r.Header.Get("X-Project"))
			}
			_, _ = w.Write([]byte(metadataJson))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func (s *readerSuite) TearDownTest() {
	s.server.Close()
}

func (s *readerSuite) TestHttpReader() {
	r := NewHttpReaderRepo(nil, time.Second, map[string]string{"X-Project": "hbarmarket"})
	b, err := r.Get(s.ctx, s.server.URL+"/metadata/3.json")
	s.Require().NoError(err)
	s.Equal(metadataJson, string(b))

	_, err = r.Get(s.ctx, s.server.URL+"/metadata/4.json")
	s.ErrorIs(err, ErrBadStatus)
}

func (s *readerSuite) TestIpfsGatewayReader() {
	r := NewGatewayReaderRepo(nil, s.server.URL+"/ipfs/", "", time.Second)
	b, err := r.Get(s.ctx, "QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/3")
	s.Require().NoError(err)
	s.Equal(metadataJson, string(b))
	s.Equal([]string{"/ipfs/QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/3"}, s.paths)
}

func (s *readerSuite) TestArReader() {
	r := NewGatewayReaderRepo(nil, s.server.URL+"/arweave", "ar://", time.Second)
	b, err := r.Get(s.ctx, "ar://eXcwlbsV1BiRGCsGKXa60Mj0i/3.json")
	s.Require().NoError(err)
	s.Equal(metadataJson, string(b))

	_, err = r.Get(s.ctx, "https://arweave.net/eXcwlbsV1BiRGCsGKXa60Mj0i/3.json")
	s.ErrorIs(err, domain.ErrUnsupportedSchema)
}

func (s *readerSuite) TestTimeout() {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer slow.Close()

	r := NewHttpReaderRepo(nil, 10*time.Millisecond, nil)
	_, err := r.Get(s.ctx, slow.URL)
	s.Error(err)
}

func (s *readerSuite) TestBodyTooLarge() {
	big := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, maxBodySize+1))
	}))
	defer big.Close()

	r := NewHttpReaderRepo(nil, time.Second, nil)
	_, err := r.Get(s.ctx, big.URL)
	s.ErrorIs(err, ErrBodyTooLarge)
}
