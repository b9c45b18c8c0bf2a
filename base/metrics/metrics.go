/*
Package metrics records counters and timings through dogstatsd.

Keys are prefixed with the owning package, e.g. "txn.submit.err". Naming:
  - internal process time: *.time
  - external latency: *.latency
  - errors: *.err
*/
package metrics

import (
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/hbarmarket/base/env"
	"github.com/x-xyz/hbarmarket/base/log"
)

// TagValueNA is used for tags whose values are not available.
const TagValueNA = "n/a"

// Ender stops a timer started by BumpTime.
type Ender interface {
	End()
}

// Service is a metrics client bound to one package.
// Tags are flat key/value pairs: "method", "GET", "status", "200".
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

type Option func(*Metrics)

// WithoutPodName drops the pod tag for metrics that do not need per-pod grouping.
func WithoutPodName() Option {
	return func(m *Metrics) {
		m.podName = false
	}
}

// New returns a client whose keys are prefixed with pkgName.
func New(pkgName string, options ...Option) Service {
	m := &Metrics{pkgName: pkgName, podName: true}
	for _, o := range options {
		o(m)
	}

	m.base = []string{
		"env:" + env.EnvName(),
		"app:" + env.AppName(),
		"chain:" + viper.GetString("network.chainId"),
	}
	if m.podName {
		m.base = append(m.base, "pod:"+env.PodName())
	}
	return m
}

type Metrics struct {
	pkgName string
	podName bool
	base    []string
}

func (m *Metrics) BumpAvg(key string, val float64, tags ...string) {
	m.report("gauge", key, sinkFor().Gauge(m.key(key), val, m.tags(tags), 1))
}

func (m *Metrics) BumpSum(key string, val float64, tags ...string) {
	m.report("count", key, sinkFor().Count(m.key(key), int64(val), m.tags(tags), 1))
}

func (m *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	m.report("histogram", key, sinkFor().Histogram(m.key(key), val, m.tags(tags), 1))
}

// BumpTime starts a timer; End records the elapsed time:
//
//	defer met.BumpTime("submit.time").End()
func (m *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timer{m: m, key: key, tags: tags, start: time.Now()}
}

func (m *Metrics) key(key string) string {
	return m.pkgName + "." + key
}

// tags joins flat pairs into dogstatsd "k:v" form after the process wide tags.
// A trailing key without a value is dropped.
func (m *Metrics) tags(pairs []string) []string {
	if len(pairs)%2 != 0 {
		log.Log().WithFields(log.Fields{"pkg": m.pkgName, "tags": pairs}).Warn("odd metric tags")
		pairs = pairs[:len(pairs)-1]
	}
	res := make([]string, 0, len(m.base)+len(pairs)/2)
	res = append(res, m.base...)
	for i := 0; i < len(pairs); i += 2 {
		res = append(res, pairs[i]+":"+pairs[i+1])
	}
	return res
}

func (m *Metrics) report(kind, key string, err error) {
	if err != nil {
		log.Log().WithFields(log.Fields{"err": err, "kind": kind, "key": m.key(key)}).Warn("metric dropped")
	}
}

type timer struct {
	m     *Metrics
	key   string
	tags  []string
	start time.Time
}

func (t *timer) End() {
	t.m.report("timing", t.key, sinkFor().Timing(t.m.key(t.key), time.Since(t.start), t.m.tags(t.tags), 1))
}
