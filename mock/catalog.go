package mock

import (
	"context"

	"github.com/fwojciec/docset"
)

var _ docset.Catalog = (*Catalog)(nil)

// Catalog is a mock implementation of docset.Catalog.
type Catalog struct {
	PagesFn  func() []*docset.Page
	DocsetFn func(ctx context.Context, version, locale string) ([]*docset.Page, error)
}

func (c *Catalog) Pages() []*docset.Page {
	return c.PagesFn()
}

func (c *Catalog) Docset(ctx context.Context, version, locale string) ([]*docset.Page, error) {
	return c.DocsetFn(ctx, version, locale)
}
