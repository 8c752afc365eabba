package resource

import (
	"context"
	"net/url"

	"github.com/pkg/errors"

	"github.com/gebv/conekta"
)

var ErrNoMorePages = errors.New("no more pages")

// Page is one bounded slice of a collection query plus its continuation
// state. It remembers the originating query, so iteration is restartable
// from any page without the first Where call.
type Page[R any] struct {
	Object      string `json:"object,omitempty"`
	Data        []R    `json:"data"`
	HasMore     bool   `json:"has_more"`
	NextPageURL string `json:"next_page_url,omitempty"`

	rc    *Context[R]
	query conekta.Query
}

// Next issues the stored query again with the continuation cursor merged
// in. Original filters survive across pages unless the cursor itself
// overrides them. Returns ErrNoMorePages once HasMore is false. A page
// claiming more results without a cursor is a malformed envelope: without
// this guard Next would re-issue the identical query and a walk-until-done
// loop would never advance.
func (p *Page[R]) Next(ctx context.Context) (*Page[R], error) {
	if !p.HasMore {
		return nil, ErrNoMorePages
	}
	if p.NextPageURL == "" {
		return nil, conekta.NewDecodeError(errors.New("has_more set but next_page_url is empty"), "")
	}
	q := p.query.Clone()
	u, err := url.Parse(p.NextPageURL)
	if err != nil {
		return nil, conekta.NewDecodeError(errors.Wrap(err, "Failed parse next page url"), "")
	}
	for k, vs := range u.Query() {
		if len(vs) > 0 {
			q[k] = vs[0]
		}
	}
	return p.rc.Where(ctx, q)
}
