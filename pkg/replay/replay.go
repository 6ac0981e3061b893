// Package replay records HTTP exchanges into a cassette and replays them for
// matching requests, so API calls can be verified without the network.
package replay

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Mode selects what happens when a request has no recorded exchange.
type Mode string

const (
	// ModeNewEpisodes replays known exchanges and records unknown ones.
	ModeNewEpisodes Mode = "new_episodes"
	// ModeNone replays known exchanges and fails on anything else.
	ModeNone Mode = "none"
)

// ParseMode normalises a configured mode; empty means ModeNewEpisodes.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeNewEpisodes:
		return ModeNewEpisodes, nil
	case ModeNone:
		return ModeNone, nil
	default:
		return "", fmt.Errorf("unsupported replay record mode %q", s)
	}
}

// Signature identifies a request inside a cassette.
type Signature struct {
	Method string
	URL    string
	Params url.Values
}

// SignatureFor derives the lookup signature of an outgoing request.
func SignatureFor(req *http.Request) Signature {
	return signatureOf(req.Method, req.URL)
}

func signatureOf(method string, target *url.URL) Signature {
	u := *target
	params := u.Query()
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	return Signature{
		Method: strings.ToUpper(method),
		URL:    u.String(),
		Params: params,
	}
}

// Key renders the signature as a stable string; parameters are sorted by name.
func (s Signature) Key() string {
	key := s.Method + " " + s.URL
	if len(s.Params) > 0 {
		key += "?" + s.Params.Encode()
	}
	return key
}

const (
	// StoreYAML keeps the cassette as a go-vcr YAML file, <path>.yaml.
	StoreYAML = "yaml"
	// StoreBBolt keeps interactions in a bbolt database keyed by signature.
	StoreBBolt = "bbolt"
)

// ValidateStore reports whether typ names a supported backend with a usable path.
func ValidateStore(typ, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("replay store requires a path")
	}
	switch normalizeStore(typ) {
	case StoreYAML, StoreBBolt:
		return nil
	default:
		return fmt.Errorf("unsupported replay store type %q", typ)
	}
}

func normalizeStore(typ string) string {
	typ = strings.ToLower(strings.TrimSpace(typ))
	if typ == "" {
		return StoreYAML
	}
	return typ
}

// MissError is returned in ModeNone when a request has not been recorded.
type MissError struct {
	Key string
}

func (e *MissError) Error() string {
	return fmt.Sprintf("no recorded interaction for %s", e.Key)
}
