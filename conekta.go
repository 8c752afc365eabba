// Package conekta holds the domain types and shared configuration of the
// payment API client. Operation surfaces live in subpackages (orders) on
// top of the generic resource engine (resource).
package conekta

import (
	"net/http"
	"net/url"
	"os"
)

const DefaultBaseURL = "https://api.conekta.io"

// Config is the shared client configuration. It is read-only after
// construction: every context built from it may be used concurrently and
// none of them mutates it.
type Config struct {
	// APIKey is the private API key, sent as a bearer credential on every
	// request.
	APIKey string
	// BaseURL overrides the API entrypoint. Empty means DefaultBaseURL.
	BaseURL string
	// HTTPClient overrides the underlying HTTP client. Empty means a
	// default &http.Client{}. Connection pooling, TLS and proxies are the
	// client's concern, not ours.
	HTTPClient *http.Client
}

// FromEnv builds a Config from CONEKTA_API_KEY and CONEKTA_ENTRYPOINT_URL.
func FromEnv() Config {
	return Config{
		APIKey:  os.Getenv("CONEKTA_API_KEY"),
		BaseURL: os.Getenv("CONEKTA_ENTRYPOINT_URL"),
	}
}

// Query is a flat filter bag for collection queries ("limit", "next" and
// whatever else the API accepts), serialized as URL query parameters.
type Query map[string]string

func (q Query) Values() url.Values {
	vs := url.Values{}
	for k, v := range q {
		vs.Set(k, v)
	}
	return vs
}

func (q Query) Clone() Query {
	out := make(Query, len(q))
	for k, v := range q {
		out[k] = v
	}
	return out
}
