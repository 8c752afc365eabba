// Package httputils is the HTTP boundary of the client: it attaches
// credentials and protocol headers, executes requests, and hands back raw
// status + body for the resource layer to interpret.
package httputils

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/gebv/conekta"
)

const acceptHeader = "application/vnd.conekta-v2.0.0+json"

// Transport executes requests against the API entrypoint. It holds no
// per-call state and is safe for concurrent use. It never retries.
type Transport struct {
	base   string
	key    string
	client *http.Client
	l      *zap.Logger
}

func NewTransport(cfg conekta.Config) *Transport {
	base := cfg.BaseURL
	if base == "" {
		base = conekta.DefaultBaseURL
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &Transport{
		base:   strings.TrimRight(base, "/"),
		key:    cfg.APIKey,
		client: client,
		l:      zap.L().Named("transport"),
	}
}

// Result is a raw remote outcome. RequestID prefers the server-side id
// from the response headers and falls back to the id this client
// generated for the request.
type Result struct {
	StatusCode int
	Body       []byte
	RequestID  string
}

// Execute runs one request. path is relative to the configured base URL
// and must start with "/". A non-2xx status is not an error here; the
// caller translates it. The context bounds the whole call, and a
// cancelled request is never retried.
func (t *Transport) Execute(ctx context.Context, method, path string, body []byte, query url.Values) (*Result, error) {
	u, err := url.Parse(t.base + path)
	if err != nil {
		return nil, errors.Wrap(err, "Failed parse url")
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return nil, errors.Wrap(err, "Failed new request")
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Authorization", "Bearer "+t.key)
	req.Header.Set("X-Request-Id", NewRequestID())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		observeRequest(method, "error", time.Since(start))
		t.l.Warn(
			"execute: do request",
			zap.String("method", method),
			zap.String("url", u.String()),
			zap.Error(err),
		)
		return nil, errors.Wrap(err, "Failed do request")
	}
	defer resp.Body.Close()
	observeRequest(method, statusLabel(resp.StatusCode), time.Since(start))

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.l.Warn(
			"execute: read body",
			zap.String("url", u.String()),
			zap.Error(err),
		)
		return nil, errors.Wrap(err, "Failed read all body")
	}

	rid := resp.Header.Get("Conekta-Request-Id")
	if rid == "" {
		rid = resp.Header.Get("X-Request-Id")
	}
	if rid == "" {
		rid = req.Header.Get("X-Request-Id")
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Body:       b,
		RequestID:  rid,
	}, nil
}
