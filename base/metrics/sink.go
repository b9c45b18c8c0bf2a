package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/hbarmarket/base/log"
)

// DdPort is the dogstatsd agent port.
var DdPort = 8125

// Sink is the subset of statsd.ClientInterface that Service bumps go through.
type Sink interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	Timing(name string, value time.Duration, tags []string, rate float64) error
}

var (
	sinkMu sync.RWMutex
	sink   Sink
)

// UseSink replaces the process wide sink. Passing nil restores the default
// chosen from configuration on next use.
func UseSink(s Sink) {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	sink = s
}

func sinkFor() Sink {
	sinkMu.RLock()
	s := sink
	sinkMu.RUnlock()
	if s != nil {
		return s
	}

	sinkMu.Lock()
	defer sinkMu.Unlock()
	if sink == nil {
		sink = dial(viper.GetString("datadog_host"))
	}
	return sink
}

// dial connects to the agent at host. Without a host, or when the agent address
// cannot be resolved, bumps go to the debug log.
func dial(host string) Sink {
	if host == "" {
		log.Log().Info("datadog_host not set, metrics go to debug log")
		return logSink{}
	}
	addr := fmt.Sprintf("%s:%d", host, DdPort)
	client, err := statsd.New(addr, statsd.WithNamespace("hbarmarket."))
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("statsd.New failed, metrics go to debug log")
		return logSink{}
	}
	log.Log().WithField("addr", addr).Info("metrics to datadog agent")
	return client
}

type logSink struct{}

func (logSink) emit(kind, name string, value interface{}, tags []string) error {
	log.Log().WithFields(log.Fields{"kind": kind, "key": name, "val": value, "tags": tags}).Debug("metric")
	return nil
}

func (s logSink) Gauge(name string, value float64, tags []string, _ float64) error {
	return s.emit("gauge", name, value, tags)
}

func (s logSink) Count(name string, value int64, tags []string, _ float64) error {
	return s.emit("count", name, value, tags)
}

func (s logSink) Histogram(name string, value float64, tags []string, _ float64) error {
	return s.emit("histogram", name, value, tags)
}

func (s logSink) Timing(name string, value time.Duration, tags []string, _ float64) error {
	return s.emit("timing", name, value, tags)
}
