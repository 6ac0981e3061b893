package apiclient

import (
	"encoding/json"
	"net/http"
)

// Method is the HTTP verb of a request. Only GET and POST are supported.
type Method string

const (
	MethodGet  Method = http.MethodGet
	MethodPost Method = http.MethodPost
)

func (m Method) valid() bool {
	return m == MethodGet || m == MethodPost
}

// Decoder turns a response body into the expected shape T.
type Decoder[T any] func(body []byte) (T, error)

// JSON returns a Decoder that unmarshals the body into T.
func JSON[T any]() Decoder[T] {
	return func(body []byte) (T, error) {
		var out T
		err := json.Unmarshal(body, &out)
		return out, err
	}
}

// RequestSpec describes one call: where to send it and how to decode the answer.
type RequestSpec[T any] struct {
	Method  Method
	BaseURL string
	Path    string
	Params  map[string]string
	Decode  Decoder[T]
}

// URL is the request target without query parameters.
func (s RequestSpec[T]) URL() string {
	return s.BaseURL + s.Path
}

// BuildGet prepares a GET request against the client's base URL decoded as JSON into T.
func BuildGet[T any](c *Client, path string, params map[string]string) RequestSpec[T] {
	return RequestSpec[T]{
		Method:  MethodGet,
		BaseURL: c.cfg.BaseURL,
		Path:    path,
		Params:  params,
		Decode:  JSON[T](),
	}
}
