package redis

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/metrics"
	"github.com/x-xyz/hbarmarket/domain/keys"
)

const (
	// pttlNoKey and pttlNoExpire are the PTTL replies for a missing key and
	// a key without expiry
	pttlNoKey    = -2
	pttlNoExpire = -1

	delBatchSize = 100
)

// getDel is GETDEL for servers older than 6.2.
var getDel = redis.NewScript(1, `
local v = redis.call('GET', KEYS[1])
if v then redis.call('DEL', KEYS[1]) end
return v`)

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

func New(name string, metrics metrics.Service, pools *Pools) Service {
	return &redImpl{
		name:  name,
		met:   metrics,
		pools: pools,
	}
}

func (r *redImpl) conn() (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()
	if r.pools == nil || r.pools.Src == nil {
		return nil, ErrNoPool
	}

	conn := r.pools.Src.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getconn.err", 1, "cluster", r.name)
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// do runs one command on a pooled connection, released right after.
func (r *redImpl) do(commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.conn()
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	return conn.Do(commandName, args...)
}

func (r *redImpl) tags(funcName, key string) []string {
	return []string{"func", funcName, "cluster", r.name, "prefix", keys.Prefix(key)}
}

func (r *redImpl) Get(c ctx.Ctx, key string) ([]byte, error) {
	tags := r.tags("get", key)
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.Bytes(r.do("GET", key))
	if err != nil {
		if err != ErrNotFound {
			c.WithField("err", err).WithField("key", key).Error("redis GET failed")
		}
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, nil
}

func (r *redImpl) Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := r.tags("set", key)
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	args := []interface{}{key, val}
	if expire != Forever && expire > 0 {
		args = append(args, "PX", expire.Milliseconds())
	}
	if _, err := r.do("SET", args...); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis SET failed")
		return err
	}
	return nil
}

func (r *redImpl) GetDel(c ctx.Ctx, key string) ([]byte, error) {
	defer r.met.BumpTime("time", r.tags("getdel", key)...).End()

	conn, err := r.conn()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	val, err := redis.Bytes(getDel.Do(conn, key))
	if err != nil && err != ErrNotFound {
		c.WithField("err", err).WithField("key", key).Error("redis GETDEL failed")
	}
	return val, err
}

func (r *redImpl) Del(c ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, fmt.Errorf("length of keys is 0")
	}
	defer r.met.BumpTime("time", r.tags("del", ks[0])...).End()

	affected := 0
	for i := 0; i < len(ks); i += delBatchSize {
		end := i + delBatchSize
		if end > len(ks) {
			end = len(ks)
		}
		n, err := redis.Int(r.do("DEL", redis.Args{}.AddFlat(ks[i:end])...))
		if err != nil {
			c.WithField("err", err).Error("redis DEL failed")
			return affected, err
		}
		affected += n
	}
	return affected, nil
}

func (r *redImpl) PTTL(c ctx.Ctx, key string) (time.Duration, error) {
	defer r.met.BumpTime("time", r.tags("pttl", key)...).End()

	ms, err := redis.Int64(r.do("PTTL", key))
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis PTTL failed")
		return 0, err
	}
	switch ms {
	case pttlNoKey:
		return 0, ErrNotFound
	case pttlNoExpire:
		return 0, ErrNoTTL
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func (r *redImpl) Ping(c ctx.Ctx) error {
	defer r.met.BumpTime("time", "func", "ping", "cluster", r.name).End()
	if _, err := r.do("PING"); err != nil {
		c.WithField("err", err).Error("redis PING failed")
		return err
	}
	return nil
}

func (r *redImpl) Name() string {
	return r.name
}
