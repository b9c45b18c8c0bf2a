// Package ctx pairs a context.Context with the logger that carries its fields,
// so every layer logs with the request id of the call that reached it.
package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/hbarmarket/base/log"
)

type Ctx struct {
	context.Context
	log.Logger
}

type key int

const requestIdKey key = iota

func Background() Ctx {
	return Ctx{Context: context.Background(), Logger: log.Log()}
}

// WithRequestId tags parent with the request id both as a value and as a log field.
func WithRequestId(parent Ctx, id string) Ctx {
	return Ctx{
		Context: context.WithValue(parent.Context, requestIdKey, id),
		Logger:  parent.Logger.WithField("requestID", id),
	}
}

// RequestId returns the id set by WithRequestId, or "".
func RequestId(c context.Context) string {
	id, _ := c.Value(requestIdKey).(string)
	return id
}

// WithFields adds log fields without touching cancellation.
func WithFields(parent Ctx, fields log.Fields) Ctx {
	return Ctx{Context: parent.Context, Logger: parent.Logger.WithFields(fields)}
}

// Detach drops the cancellation of parent and keeps its request id and log
// fields, for work that outlives the request which started it.
func Detach(parent Ctx) Ctx {
	c := context.Background()
	if id := RequestId(parent); id != "" {
		c = context.WithValue(c, requestIdKey, id)
	}
	return Ctx{Context: c, Logger: parent.Logger}
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	c, cancel := context.WithCancel(parent.Context)
	return Ctx{Context: c, Logger: parent.Logger}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	c, cancel := context.WithTimeout(parent.Context, timeout)
	return Ctx{Context: c, Logger: parent.Logger}, cancel
}
