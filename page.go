package docset

import (
	"path/filepath"
	"strings"
)

// MarkdownExt is the extension of files indexed as pages.
const MarkdownExt = ".md"

// DefaultLocale is used when a query does not name a locale.
const DefaultLocale = "en-US"

// Page represents one indexed documentation file laid out as
// <version>/<locale>/<filePath> beneath a content root.
type Page struct {
	Version  string `json:"version"`
	Locale   string `json:"locale"`
	FilePath string `json:"filePath"`
	FullPath string `json:"fullPath"`
}

// RelPath returns the path of the page relative to the content root.
func (p *Page) RelPath() string {
	return filepath.Join(p.Version, p.Locale, p.FilePath)
}

// DecodePath converts a path relative to root into a Page.
// Segments are split on the platform separator; forward slashes are accepted
// as well. The first segment is the version and the second the locale.
// Decoding is purely structural: version and locale are not checked against
// any known list. Returns EINVALID if the path has fewer than two segments or
// if the version or locale segment is empty, as in "/en-US/guide.md", rather
// than producing a page with a blank version or locale.
func DecodePath(root, relPath string) (*Page, error) {
	segments := strings.Split(filepath.ToSlash(relPath), "/")
	if len(segments) < 2 {
		return nil, Errorf(EINVALID, "path %q has fewer than two segments", relPath)
	}
	if segments[0] == "" || segments[1] == "" {
		return nil, Errorf(EINVALID, "path %q has an empty version or locale segment", relPath)
	}

	return &Page{
		Version:  segments[0],
		Locale:   segments[1],
		FilePath: strings.Join(segments[2:], string(filepath.Separator)),
		FullPath: filepath.Join(root, relPath),
	}, nil
}

// IsMarkdown reports whether name carries the markdown extension.
func IsMarkdown(name string) bool {
	return strings.HasSuffix(name, MarkdownExt)
}
