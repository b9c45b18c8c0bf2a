package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type bump struct {
	kind string
	name string
	tags []string
}

type recorder struct {
	sync.Mutex
	bumps []bump
	err   error
}

func (r *recorder) add(kind, name string, tags []string) error {
	r.Lock()
	defer r.Unlock()
	r.bumps = append(r.bumps, bump{kind, name, tags})
	return r.err
}

func (r *recorder) Gauge(name string, _ float64, tags []string, _ float64) error {
	return r.add("gauge", name, tags)
}

func (r *recorder) Count(name string, _ int64, tags []string, _ float64) error {
	return r.add("count", name, tags)
}

func (r *recorder) Histogram(name string, _ float64, tags []string, _ float64) error {
	return r.add("histogram", name, tags)
}

func (r *recorder) Timing(name string, _ time.Duration, tags []string, _ float64) error {
	return r.add("timing", name, tags)
}

func TestBumps(t *testing.T) {
	req := require.New(t)
	rec := &recorder{}
	UseSink(rec)
	defer UseSink(nil)

	met := New("txn", WithoutPodName())
	met.BumpSum("submit.err", 1, "reason", "rejected")
	met.BumpAvg("gas", 21000)
	met.BumpHistogram("logs", 3)
	met.BumpTime("receipt.time", "status").End()

	req.Len(rec.bumps, 4)
	req.Equal("count", rec.bumps[0].kind)
	req.Equal("txn.submit.err", rec.bumps[0].name)
	req.Contains(rec.bumps[0].tags, "reason:rejected")
	req.Equal("timing", rec.bumps[3].kind)
	// odd tag dropped
	for _, tag := range rec.bumps[3].tags {
		req.NotContains(tag, "status")
	}
	for _, b := range rec.bumps {
		for _, tag := range b.tags {
			req.NotContains(tag, "pod:")
		}
	}
}

func TestPodTag(t *testing.T) {
	rec := &recorder{}
	UseSink(rec)
	defer UseSink(nil)

	New("cache").BumpSum("hit", 1)
	require.Len(t, rec.bumps, 1)
	found := false
	for _, tag := range rec.bumps[0].tags {
		found = found || len(tag) >= 4 && tag[:4] == "pod:"
	}
	require.True(t, found)
}

func TestSinkErrorDoesNotPanic(t *testing.T) {
	UseSink(&recorder{err: errors.New("agent gone")})
	defer UseSink(nil)

	require.NotPanics(t, func() {
		New("listing").BumpSum("buy", 1)
	})
}

func TestDefaultSink(t *testing.T) {
	UseSink(nil)
	_, ok := sinkFor().(logSink)
	require.True(t, ok)
}
