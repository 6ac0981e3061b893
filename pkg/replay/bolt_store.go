package replay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

const interactionBucket = "interactions"

// RecordedRequest is the request half of an Interaction.
type RecordedRequest struct {
	Method string            `json:"method"`
	URL    string            `json:"url"`
	Params map[string]string `json:"params,omitempty"`
}

// RecordedResponse is the response half of an Interaction.
type RecordedResponse struct {
	StatusCode int                 `json:"status_code"`
	Status     string              `json:"status"`
	Headers    map[string][]string `json:"headers,omitempty"`
	Body       []byte              `json:"body"`
}

// Interaction is one recorded request/response exchange in a bbolt cassette.
type Interaction struct {
	Key        string           `json:"key"`
	Request    RecordedRequest  `json:"request"`
	Response   RecordedResponse `json:"response"`
	RecordedAt time.Time        `json:"recorded_at"`
}

// Store persists interactions keyed by Signature.Key.
type Store interface {
	Lookup(key string) (Interaction, bool, error)
	Append(it Interaction) error
	Close() error
}

// boltCassette keeps interactions in a bbolt bucket keyed by signature. The
// database is opened and closed around each exchange.
type boltCassette struct {
	path string
	mode Mode
	mu   *sync.Mutex
}

func newBoltCassette(path string, mode Mode) *boltCassette {
	return &boltCassette{path: path, mode: mode, mu: lockFor(path)}
}

// Use acquires the cassette for the duration of fn. The cassette is released
// even when fn fails; a release failure is reported only if fn itself succeeded.
func (b *boltCassette) Use(fn func(Store) error) (err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	store, err := openBolt(b.path)
	if err != nil {
		return fmt.Errorf("open cassette: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close cassette: %w", cerr)
		}
	}()

	return fn(store)
}

func (b *boltCassette) exchange(req *http.Request, live http.RoundTripper) (*http.Response, error) {
	sig := SignatureFor(req)
	key := sig.Key()

	var resp *http.Response
	err := b.Use(func(store Store) error {
		it, ok, err := store.Lookup(key)
		if err != nil {
			return err
		}
		if ok {
			resp = it.Response.toHTTP(req)
			return nil
		}
		if b.mode == ModeNone {
			return &MissError{Key: key}
		}

		res, err := live.RoundTrip(req)
		if err != nil {
			return err
		}
		it, err = capture(sig, key, res)
		if err != nil {
			return err
		}
		if err := store.Append(it); err != nil {
			return fmt.Errorf("append interaction: %w", err)
		}
		resp = it.Response.toHTTP(req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// boltStore implements a Store backed by BoltDB. The file lock bbolt takes on
// open also serialises cassette users across processes.
type boltStore struct {
	db *bolt.DB
}

func openBolt(path string) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cassette directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt cassette: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(interactionBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}
	return &boltStore{db: db}, nil
}

func (b *boltStore) Lookup(key string) (Interaction, bool, error) {
	var (
		it    Interaction
		found bool
	)
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(interactionBucket))
		if bucket == nil {
			return fmt.Errorf("interaction bucket missing")
		}
		raw := bucket.Get([]byte(key))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, &it); err != nil {
			return fmt.Errorf("decode interaction %q: %w", key, err)
		}
		found = true
		return nil
	})
	return it, found, err
}

func (b *boltStore) Append(it Interaction) error {
	raw, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("encode interaction: %w", err)
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(interactionBucket))
		if bucket == nil {
			return fmt.Errorf("interaction bucket missing")
		}
		if bucket.Get([]byte(it.Key)) != nil {
			return nil
		}
		return bucket.Put([]byte(it.Key), raw)
	})
}

func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

func capture(sig Signature, key string, live *http.Response) (Interaction, error) {
	defer live.Body.Close()

	body, err := io.ReadAll(live.Body)
	if err != nil {
		return Interaction{}, fmt.Errorf("read live response: %w", err)
	}

	params := make(map[string]string, len(sig.Params))
	for k := range sig.Params {
		params[k] = sig.Params.Get(k)
	}

	headers := make(map[string][]string, len(live.Header))
	for k, v := range live.Header {
		if k == "Content-Length" || k == "Content-Encoding" {
			continue
		}
		headers[k] = append([]string(nil), v...)
	}

	return Interaction{
		Key: key,
		Request: RecordedRequest{
			Method: sig.Method,
			URL:    sig.URL,
			Params: params,
		},
		Response: RecordedResponse{
			StatusCode: live.StatusCode,
			Status:     live.Status,
			Headers:    headers,
			Body:       body,
		},
		RecordedAt: time.Now().UTC(),
	}, nil
}

func (rr RecordedResponse) toHTTP(req *http.Request) *http.Response {
	header := make(http.Header, len(rr.Headers))
	for k, v := range rr.Headers {
		header[k] = append([]string(nil), v...)
	}
	status := rr.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", rr.StatusCode, http.StatusText(rr.StatusCode))
	}
	return &http.Response{
		Status:        status,
		StatusCode:    rr.StatusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(rr.Body)),
		ContentLength: int64(len(rr.Body)),
		Request:       req,
	}
}
