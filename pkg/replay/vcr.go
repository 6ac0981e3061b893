package replay

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/dnaeon/go-vcr.v4/pkg/cassette"
	"gopkg.in/dnaeon/go-vcr.v4/pkg/recorder"
)

const lockRetryDelay = 10 * time.Millisecond

// vcrCassette drives a go-vcr recorder over a YAML cassette. The recorder is
// opened and stopped around each exchange so every recording is on disk
// before the call returns. An advisory lock file keeps other processes from
// writing the same cassette concurrently.
type vcrCassette struct {
	name string
	mode Mode
	mu   *sync.Mutex
	file *flock.Flock
}

func newVCRCassette(path string, mode Mode) *vcrCassette {
	name := strings.TrimSuffix(path, ".yaml")
	return &vcrCassette{
		name: name,
		mode: mode,
		mu:   lockFor(CassetteFile(StoreYAML, path)),
		file: flock.New(name + ".yaml.lock"),
	}
}

// CassetteFile returns the file a backend writes for the configured path.
func CassetteFile(typ, path string) string {
	if normalizeStore(typ) == StoreYAML {
		return strings.TrimSuffix(path, ".yaml") + ".yaml"
	}
	return path
}

func (c *vcrCassette) exchange(req *http.Request, live http.RoundTripper) (resp *http.Response, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if dir := filepath.Dir(c.name); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cassette directory: %w", err)
		}
	}
	locked, err := c.file.TryLockContext(req.Context(), lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("lock cassette: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("lock cassette: %s is held", c.file.Path())
	}
	defer c.file.Unlock()

	rec, err := recorder.New(c.name,
		recorder.WithMode(c.vcrMode()),
		recorder.WithRealTransport(live),
		recorder.WithMatcher(matchSignature),
		recorder.WithReplayableInteractions(true),
		recorder.WithSkipRequestLatency(true),
	)
	if errors.Is(err, cassette.ErrCassetteNotFound) {
		return nil, &MissError{Key: SignatureFor(req).Key()}
	}
	if err != nil {
		return nil, fmt.Errorf("open cassette: %w", err)
	}
	defer func() {
		if serr := rec.Stop(); serr != nil && err == nil {
			if resp != nil {
				resp.Body.Close()
				resp = nil
			}
			err = fmt.Errorf("save cassette: %w", serr)
		}
	}()

	resp, err = rec.RoundTrip(req)
	if errors.Is(err, cassette.ErrInteractionNotFound) {
		return nil, &MissError{Key: SignatureFor(req).Key()}
	}
	return resp, err
}

func (c *vcrCassette) vcrMode() recorder.Mode {
	if c.mode == ModeNone {
		return recorder.ModeReplayOnly
	}
	return recorder.ModeReplayWithNewEpisodes
}

// matchSignature matches on method, URL without query and the sorted query.
func matchSignature(r *http.Request, i cassette.Request) bool {
	u, err := url.Parse(i.URL)
	if err != nil {
		return false
	}
	return SignatureFor(r).Key() == signatureOf(i.Method, u).Key()
}
