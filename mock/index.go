package mock

import "github.com/fwojciec/docset"

var _ docset.Index = (*Index)(nil)

// Index is a mock implementation of docset.Index.
type Index struct {
	RootFn          func() string
	KnownVersionsFn func() docset.Versions
	VersionsFn      func() []string
	LocalesFn       func(version string) []string
	SkippedFn       func() []string
	FingerprintFn   func() string
}

func (i *Index) Root() string {
	return i.RootFn()
}

func (i *Index) KnownVersions() docset.Versions {
	return i.KnownVersionsFn()
}

func (i *Index) Versions() []string {
	return i.VersionsFn()
}

func (i *Index) Locales(version string) []string {
	return i.LocalesFn(version)
}

func (i *Index) Skipped() []string {
	return i.SkippedFn()
}

func (i *Index) Fingerprint() string {
	return i.FingerprintFn()
}
