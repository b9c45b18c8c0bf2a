// Package goroutine runs background work that must not take the process down
// and that shutdown can wait for.
package goroutine

import (
	"context"
	"sync"

	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/base/utils"
)

type PanicEvent struct {
	Label string
	Panic interface{}
	Stack []byte
}

// Group tracks goroutines started with Go. The zero value is ready to use.
type Group struct {
	Name string
	// OnPanic runs after a recovered panic has been logged.
	OnPanic func(PanicEvent)

	wg sync.WaitGroup
}

// Go runs f on a new goroutine. A panic in f is logged with label and stack and
// does not propagate.
func (g *Group) Go(label string, f func()) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			ev := PanicEvent{Label: label, Panic: p, Stack: utils.Stack(3)}
			log.Log().WithFields(log.Fields{
				"group": g.Name,
				"label": label,
				"err":   p,
				"stack": string(ev.Stack),
			}).Error("panic")
			if g.OnPanic != nil {
				g.OnPanic(ev)
			}
		}()
		f()
	}()
}

// Wait blocks until every goroutine has returned or ctx is done.
func (g *Group) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
