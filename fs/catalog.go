package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docset"
)

// Ensure Catalog implements docset.Catalog and docset.Index at compile time.
var (
	_ docset.Catalog = (*Catalog)(nil)
	_ docset.Index   = (*Catalog)(nil)
)

// Catalog implements docset.Catalog over a content root laid out as
// <version>/<locale>/<path>.md. It is immutable once opened and safe for
// concurrent use.
type Catalog struct {
	root        string
	versions    docset.Versions
	pages       []*docset.Page
	skipped     []string
	fingerprint string
}

// OpenCatalog scans root and returns a ready catalog.
// versions is the ordered list of known versions; the first is the latest.
//
// A missing root returns ENOTFOUND, a root that is not a directory returns
// EINVALID. An empty root is not an error. Markdown files with fewer than two
// path segments are skipped and reported by Skipped.
func OpenCatalog(root string, versions docset.Versions) (*Catalog, error) {
	if len(versions) == 0 {
		return nil, docset.Errorf(docset.EINVALID, "at least one known version required")
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve content root %q: %w", root, err)
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return nil, docset.Errorf(docset.ENOTFOUND, "content root %q does not exist", root)
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat content root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, docset.Errorf(docset.EINVALID, "content root %q is not a directory", root)
	}

	paths, err := Walk(abs)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		root:     abs,
		versions: slices.Clone(versions),
		pages:    []*docset.Page{},
	}

	h := xxhash.New()
	for _, rel := range paths {
		if !docset.IsMarkdown(rel) {
			continue
		}

		page, err := docset.DecodePath(abs, rel)
		if err != nil {
			c.skipped = append(c.skipped, rel)
			continue
		}
		c.pages = append(c.pages, page)

		_, _ = h.WriteString(filepath.ToSlash(rel))
		_, _ = h.Write([]byte{0})
	}
	c.fingerprint = fmt.Sprintf("%016x", h.Sum64())

	return c, nil
}

// Root returns the absolute content root.
func (c *Catalog) Root() string {
	return c.root
}

// KnownVersions returns the configured versions, latest first.
func (c *Catalog) KnownVersions() docset.Versions {
	return slices.Clone(c.versions)
}

// Pages returns every indexed page in scan order.
func (c *Catalog) Pages() []*docset.Page {
	return c.pages
}

// Docset returns the pages for version and locale, applying defaults for
// empty arguments.
func (c *Catalog) Docset(ctx context.Context, version, locale string) ([]*docset.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	version, locale = docset.ResolveDocset(c.versions, version, locale)
	return docset.FilterPages(c.pages, version, locale), nil
}

// Versions returns the distinct versions present on disk in scan order.
// Unlike KnownVersions it includes versions missing from configuration.
func (c *Catalog) Versions() []string {
	versions := []string{}
	for _, p := range c.pages {
		if !slices.Contains(versions, p.Version) {
			versions = append(versions, p.Version)
		}
	}
	return versions
}

// Locales returns the distinct locales present for version in scan order.
func (c *Catalog) Locales(version string) []string {
	locales := []string{}
	for _, p := range c.pages {
		if p.Version == version && !slices.Contains(locales, p.Locale) {
			locales = append(locales, p.Locale)
		}
	}
	return locales
}

// Skipped returns markdown paths that could not be decoded into pages.
func (c *Catalog) Skipped() []string {
	return slices.Clone(c.skipped)
}

// Fingerprint returns a hash of the indexed page paths in scan order.
// Catalogs over identical trees have identical fingerprints.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}
