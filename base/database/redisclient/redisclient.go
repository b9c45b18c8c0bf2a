package redisclient

import (
	"runtime"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
	idleTimeout  = 240 * time.Second
)

type Config struct {
	Uri      string
	Password string
	// PoolMultiplier scales the pool by cpu count, 0 keeps the defaults.
	PoolMultiplier float64
	// Attempts is how many times the first connection is tried.
	Attempts int
}

// MustConnectRedis panics when redis is unreachable.
func MustConnectRedis(c ctx.Ctx, cfg Config) *redis.Pool {
	p, err := ConnectRedis(c, cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": cfg.Uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

func newPool(cfg Config) *redis.Pool {
	maxIdle := 16
	maxActive := 64
	if cfg.PoolMultiplier > 0 {
		cpu := float64(runtime.NumCPU())
		maxIdle = int(cpu*cfg.PoolMultiplier/4) + 1
		maxActive = int(cpu*cfg.PoolMultiplier) + 1
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if len(cfg.Password) > 0 {
		opts = append(opts, redis.DialPassword(cfg.Password))
	}
	return &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: idleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", cfg.Uri, opts...)
		},
		TestOnBorrow: func(conn redis.Conn, t time.Time) error {
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := conn.Do("PING")
			return err
		},
	}
}

// ConnectRedis builds a pool and pings through it, retrying with backoff.
func ConnectRedis(c ctx.Ctx, cfg Config) (*redis.Pool, error) {
	p := newPool(cfg)
	attempts := cfg.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 4 * time.Second
	b.MaxElapsedTime = 0

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		err := ping(p)
		if err != nil {
			c.WithFields(log.Fields{
				"redisURI": cfg.Uri,
				"err":      err,
				"attempt":  attempt,
			}).Error("fail to ping Redis")
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(b, uint64(attempts-1)), c))
	if err != nil {
		p.Close()
		return nil, err
	}

	c.WithField("redisURI", cfg.Uri).Info("redis connected")
	return p, nil
}

func ping(p *redis.Pool) error {
	conn := p.Get()
	defer conn.Close()
	_, err := conn.Do("PING")
	return err
}
