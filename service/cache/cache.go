// Package cache stores typed values under a namespace on top of a byte level
// provider. Values are json encoded unless a Codec is configured.
package cache

import (
	"encoding/json"
	"time"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/service/cache/provider"
)

// ErrNotFound is returned on a miss, including an expired key.
var ErrNotFound = provider.ErrNotFound

// Filler loads a value on a miss. It returns a pointer of the container's type.
type Filler func() (interface{}, error)

type Codec interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }

type Service interface {
	// GetByFunc reads key into container, calling fill and storing its result on a miss.
	GetByFunc(c ctx.Ctx, key string, container interface{}, fill Filler) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
	// Take reads and removes key. Across replicas sharing redis, only one
	// caller gets the value.
	Take(c ctx.Ctx, key string, container interface{}) error
}

type ServiceConfig struct {
	Ttl   time.Duration
	Pfx   string
	Cache provider.Provider
	Codec Codec
}
