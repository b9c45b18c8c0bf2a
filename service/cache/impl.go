package cache

import (
	"reflect"
	"time"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/domain/keys"
	"github.com/x-xyz/hbarmarket/service/cache/provider"
)

type impl struct {
	ttl   time.Duration
	pfx   string
	cache provider.Provider
	codec Codec
}

func New(config ServiceConfig) Service {
	im := &impl{
		ttl:   config.Ttl,
		pfx:   config.Pfx,
		cache: config.Cache,
		codec: config.Codec,
	}
	if im.codec == nil {
		im.codec = jsonCodec{}
	}
	return im
}

func (im *impl) key(k string) string {
	return keys.Join(im.pfx, k)
}

// GetByFunc does not fail when storing the filled value fails, it only logs.
func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, fill Filler) error {
	err := im.Get(c, key, container)
	if err == nil {
		return nil
	} else if err != ErrNotFound {
		return err
	}

	val, err := fill()
	if err != nil {
		return err
	}
	if err := im.Set(c, key, val); err != nil {
		c.WithFields(log.Fields{"key": key, "err": err}).Warn("cache fill failed")
	}
	reflect.ValueOf(container).Elem().Set(reflect.ValueOf(val).Elem())
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	k := im.key(key)
	val, _, err := im.cache.Get(c, k)
	if err == ErrNotFound {
		return err
	} else if err != nil {
		c.WithFields(log.Fields{"key": k, "err": err}).Error("cache.Get failed")
		return err
	}
	return im.decode(c, k, val, container)
}

func (im *impl) decode(c ctx.Ctx, k string, val []byte, container interface{}) error {
	if err := im.codec.Unmarshal(val, container); err != nil {
		c.WithFields(log.Fields{"key": k, "err": err}).Error("codec.Unmarshal failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	k := im.key(key)
	val, err := im.codec.Marshal(value)
	if err != nil {
		c.WithFields(log.Fields{"key": k, "err": err}).Error("codec.Marshal failed")
		return err
	}
	if err := im.cache.Set(c, k, val, im.ttl); err != nil {
		c.WithFields(log.Fields{"key": k, "err": err}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	return im.cache.Del(c, im.key(key))
}

func (im *impl) Take(c ctx.Ctx, key string, container interface{}) error {
	k := im.key(key)
	val, err := im.cache.Take(c, k)
	if err == ErrNotFound {
		return err
	} else if err != nil {
		c.WithFields(log.Fields{"key": k, "err": err}).Error("cache.Take failed")
		return err
	}
	return im.decode(c, k, val, container)
}
