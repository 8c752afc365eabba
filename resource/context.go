// Package resource implements the generic engine mapping typed resources
// onto the API's REST conventions. A Descriptor declares a resource's
// collection path and named actions; Context provides the five primitives
// (create, update, find, where, action) every operation surface reduces
// to, plus nested child creation.
package resource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/gebv/conekta"
	"github.com/gebv/conekta/httputils"
)

// ActionSpec declares how a named action maps onto the wire. Zero values
// mean POST with a path suffix equal to the action name.
type ActionSpec struct {
	Method string
	Suffix string
}

// Descriptor declares a resource: its collection path segment and the
// actions it supports beyond plain CRUD.
type Descriptor struct {
	Path    string
	Actions map[string]ActionSpec
}

// Identified is satisfied by update payloads carrying the resource id.
type Identified interface {
	ResourceID() string
}

// Context executes operations for one resource type against a shared
// read-only configuration. It holds no per-call state: a single Context
// may be used from any number of goroutines, and no operation is ever
// retried by the engine.
type Context[R any] struct {
	desc Descriptor
	t    *httputils.Transport
	l    *zap.Logger
}

func NewContext[R any](cfg conekta.Config, desc Descriptor) *Context[R] {
	return &Context[R]{
		desc: desc,
		t:    httputils.NewTransport(cfg),
		l:    zap.L().Named(desc.Path + "_context"),
	}
}

// Create POSTs the payload to the collection endpoint. Required-field
// validation beyond nil guards is the remote system's job; its rejection
// comes back as a validation error.
func (c *Context[R]) Create(ctx context.Context, payload interface{}) (*R, error) {
	if payload == nil {
		return nil, conekta.NewValidationError("empty payload")
	}
	return c.one(ctx, http.MethodPost, "/"+c.desc.Path, payload)
}

// Update PUTs the payload to the item endpoint. The payload must carry a
// non-empty id; an unknown id surfaces as a not-found error.
func (c *Context[R]) Update(ctx context.Context, payload Identified) (*R, error) {
	if payload == nil || payload.ResourceID() == "" {
		return nil, conekta.NewValidationError("empty resource id")
	}
	return c.one(ctx, http.MethodPut, c.itemPath(payload.ResourceID()), payload)
}

// Find GETs one resource by id.
func (c *Context[R]) Find(ctx context.Context, id string) (*R, error) {
	if id == "" {
		return nil, conekta.NewValidationError("empty resource id")
	}
	return c.one(ctx, http.MethodGet, c.itemPath(id), nil)
}

// Where GETs a collection page matching the query. An empty result set is
// still a page, never an error.
func (c *Context[R]) Where(ctx context.Context, q conekta.Query) (*Page[R], error) {
	res, err := c.call(ctx, http.MethodGet, "/"+c.desc.Path, nil, q)
	if err != nil {
		return nil, err
	}
	var p Page[R]
	if err := json.Unmarshal(res.Body, &p); err != nil {
		return nil, conekta.NewDecodeError(err, res.RequestID)
	}
	p.rc = c
	p.query = q.Clone()
	return &p, nil
}

// Action runs a named state transition on an existing resource. The
// action must appear in the descriptor's registry; payload may be nil for
// bodyless actions.
func (c *Context[R]) Action(ctx context.Context, id, name string, payload interface{}) (*R, error) {
	if id == "" {
		return nil, conekta.NewValidationError("empty resource id")
	}
	spec, ok := c.desc.Actions[name]
	if !ok {
		return nil, conekta.NewValidationError("unknown action: " + name)
	}
	method := spec.Method
	if method == "" {
		method = http.MethodPost
	}
	suffix := spec.Suffix
	if suffix == "" {
		suffix = name
	}
	return c.one(ctx, method, c.itemPath(id)+"/"+suffix, payload)
}

// CreateChild POSTs a child payload under a parent resource. A free
// function because methods cannot introduce the child's type parameter;
// the child descriptor is all that distinguishes one child type from
// another.
func CreateChild[C any, R any](ctx context.Context, parent *Context[R], parentID string, child Descriptor, payload interface{}) (*C, error) {
	if parentID == "" {
		return nil, conekta.NewValidationError("empty parent id")
	}
	if payload == nil {
		return nil, conekta.NewValidationError("empty payload")
	}
	res, err := parent.call(ctx, http.MethodPost, parent.itemPath(parentID)+"/"+child.Path, payload, nil)
	if err != nil {
		return nil, err
	}
	var out C
	if err := json.Unmarshal(res.Body, &out); err != nil {
		return nil, conekta.NewDecodeError(err, res.RequestID)
	}
	return &out, nil
}

func (c *Context[R]) itemPath(id string) string {
	return "/" + c.desc.Path + "/" + url.PathEscape(id)
}

func (c *Context[R]) one(ctx context.Context, method, path string, payload interface{}) (*R, error) {
	res, err := c.call(ctx, method, path, payload, nil)
	if err != nil {
		return nil, err
	}
	var out R
	if err := json.Unmarshal(res.Body, &out); err != nil {
		return nil, conekta.NewDecodeError(err, res.RequestID)
	}
	return &out, nil
}

func (c *Context[R]) call(ctx context.Context, method, path string, payload interface{}, q conekta.Query) (*httputils.Result, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, conekta.NewEncodeError(err)
		}
	}
	var qv url.Values
	if len(q) > 0 {
		qv = q.Values()
	}
	res, err := c.t.Execute(ctx, method, path, body, qv)
	if err != nil {
		return nil, conekta.NewTransportError(err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.l.Warn(
			"call: remote error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", res.StatusCode),
			zap.String("request_id", res.RequestID),
		)
		return nil, conekta.Translate(res.StatusCode, res.Body, res.RequestID)
	}
	return res, nil
}
