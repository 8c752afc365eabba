package httputils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gebv/conekta"
)

func TestExecuteSetsProtocolHeaders(t *testing.T) {
	var (
		gotHeader http.Header
		gotMethod string
		gotPath   string
		gotQuery  url.Values
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Clone()
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Conekta-Request-Id", "req_srv_1")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"ord_1"}`))
	}))
	defer srv.Close()

	tr := NewTransport(conekta.Config{APIKey: "key_test", BaseURL: srv.URL})
	res, err := tr.Execute(context.Background(), http.MethodPost, "/orders", []byte(`{"currency":"MXN"}`), url.Values{"limit": {"10"}})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.JSONEq(t, `{"id":"ord_1"}`, string(res.Body))
	assert.Equal(t, "req_srv_1", res.RequestID)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/orders", gotPath)
	assert.Equal(t, "10", gotQuery.Get("limit"))
	assert.Equal(t, "Bearer key_test", gotHeader.Get("Authorization"))
	assert.Equal(t, acceptHeader, gotHeader.Get("Accept"))
	assert.Equal(t, "application/json", gotHeader.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(gotHeader.Get("X-Request-Id"), "cc-"))
}

func TestExecuteGetHasNoContentType(t *testing.T) {
	var gotHeader http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Clone()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := NewTransport(conekta.Config{APIKey: "key_test", BaseURL: srv.URL})
	_, err := tr.Execute(context.Background(), http.MethodGet, "/orders/ord_1", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, gotHeader.Get("Content-Type"))
}

func TestExecuteFallsBackToClientRequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := NewTransport(conekta.Config{APIKey: "key_test", BaseURL: srv.URL})
	res, err := tr.Execute(context.Background(), http.MethodGet, "/orders", nil, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.RequestID, "cc-"))
}

func TestExecutePassesThroughRemoteErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"type":"resource_not_found_error"}`))
	}))
	defer srv.Close()

	tr := NewTransport(conekta.Config{APIKey: "key_test", BaseURL: srv.URL})
	res, err := tr.Execute(context.Background(), http.MethodGet, "/orders/nope", nil, nil)

	// a non-2xx status is a result, not a transport failure
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestExecuteCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := NewTransport(conekta.Config{APIKey: "key_test", BaseURL: srv.URL})
	_, err := tr.Execute(ctx, http.MethodGet, "/orders", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestExecuteConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	tr := NewTransport(conekta.Config{APIKey: "key_test", BaseURL: srv.URL})
	_, err := tr.Execute(context.Background(), http.MethodGet, "/orders", nil, nil)
	require.Error(t, err)
}

func TestNewRequestID(t *testing.T) {
	a := NewRequestID()
	b := NewRequestID()
	assert.True(t, strings.HasPrefix(a, "cc-"))
	assert.NotEqual(t, a, b)
}
