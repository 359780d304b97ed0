package docset

import "context"

// Catalog owns the indexed pages and serves version/locale scoped queries.
// The page collection is built once and never changes afterwards.
type Catalog interface {
	// Pages returns every indexed page in scan order.
	// Callers must not modify the returned slice or its pages.
	Pages() []*Page

	// Docset returns the pages matching version and locale in scan order.
	// An empty version resolves to the latest known version and an empty
	// locale to DefaultLocale. No match yields an empty result, not an error.
	Docset(ctx context.Context, version, locale string) ([]*Page, error)
}

// Index describes the contents of a built catalog.
type Index interface {
	// Root returns the absolute content root.
	Root() string

	// KnownVersions returns the configured versions, latest first.
	KnownVersions() Versions

	// Versions returns the distinct versions present on disk in scan order,
	// configured or not.
	Versions() []string

	// Locales returns the distinct locales present for version in scan order.
	Locales(version string) []string

	// Skipped returns markdown paths that could not be decoded into pages.
	Skipped() []string

	// Fingerprint returns a hash of the indexed page paths.
	Fingerprint() string
}

// Versions is the ordered list of known version identifiers.
// The first entry is the latest.
type Versions []string

// Latest returns the first version, or an empty string if there are none.
func (v Versions) Latest() string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// Contains reports whether version is configured.
func (v Versions) Contains(version string) bool {
	for _, s := range v {
		if s == version {
			return true
		}
	}
	return false
}

// ResolveDocset applies the query defaults: the latest version for an empty
// version and DefaultLocale for an empty locale.
func ResolveDocset(versions Versions, version, locale string) (string, string) {
	if version == "" {
		version = versions.Latest()
	}
	if locale == "" {
		locale = DefaultLocale
	}
	return version, locale
}

// FilterPages returns the pages whose version and locale both match,
// preserving order. The input is not modified.
func FilterPages(pages []*Page, version, locale string) []*Page {
	docs := []*Page{}
	for _, p := range pages {
		if p.Version == version && p.Locale == locale {
			docs = append(docs, p)
		}
	}
	return docs
}
