package replay

import (
	"net/http"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// cassetteLocks serialises in-process users of the same cassette path.
var cassetteLocks sync.Map

func lockFor(path string) *sync.Mutex {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	mu, _ := cassetteLocks.LoadOrStore(path, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Options configure a Recorder.
type Options struct {
	StoreType string
	Path      string
	Mode      Mode
}

// backend serves one exchange from its cassette. live is only called for
// exchanges that have not been recorded yet.
type backend interface {
	exchange(req *http.Request, live http.RoundTripper) (*http.Response, error)
}

// Recorder is an http.RoundTripper that serves requests from a cassette and
// records the ones it has not seen yet. Every exchange acquires the cassette
// and releases it before returning.
type Recorder struct {
	backend  backend
	next     http.RoundTripper
	replayed atomic.Int64
	recorded atomic.Int64
}

// NewRecorder builds a Recorder over next. A nil next uses http.DefaultTransport.
func NewRecorder(opts Options, next http.RoundTripper) (*Recorder, error) {
	if err := ValidateStore(opts.StoreType, opts.Path); err != nil {
		return nil, err
	}
	mode, err := ParseMode(string(opts.Mode))
	if err != nil {
		return nil, err
	}
	if next == nil {
		next = http.DefaultTransport
	}

	var b backend
	switch normalizeStore(opts.StoreType) {
	case StoreBBolt:
		b = newBoltCassette(opts.Path, mode)
	default:
		b = newVCRCassette(opts.Path, mode)
	}
	return &Recorder{backend: b, next: next}, nil
}

// RoundTrip replays a recorded exchange for req or performs and records a live one.
func (r *Recorder) RoundTrip(req *http.Request) (*http.Response, error) {
	live := &liveCall{next: r.next}
	resp, err := r.backend.exchange(req, live)
	if err != nil {
		return nil, err
	}
	if live.called.Load() {
		r.recorded.Add(1)
	} else {
		r.replayed.Add(1)
	}
	return resp, nil
}

// Replayed reports how many requests were answered from the cassette.
func (r *Recorder) Replayed() int64 { return r.replayed.Load() }

// Recorded reports how many live exchanges were appended to the cassette.
func (r *Recorder) Recorded() int64 { return r.recorded.Load() }

// CloseIdleConnections forwards to the live transport when it supports it.
func (r *Recorder) CloseIdleConnections() {
	type idleCloser interface{ CloseIdleConnections() }
	if c, ok := r.next.(idleCloser); ok {
		c.CloseIdleConnections()
	}
}

// liveCall marks whether an exchange reached the network.
type liveCall struct {
	next   http.RoundTripper
	called atomic.Bool
}

func (l *liveCall) RoundTrip(req *http.Request) (*http.Response, error) {
	l.called.Store(true)
	return l.next.RoundTrip(req)
}
