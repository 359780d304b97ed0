package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docset"
)

// FormatPages reads each page from disk and joins them for display.
// Each page is headed by its slash-separated relative path; pages are
// separated by blank lines.
func FormatPages(pages []*docset.Page) (string, error) {
	if len(pages) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		content, err := os.ReadFile(p.FullPath)
		if err != nil {
			return "", fmt.Errorf("failed to read page %q: %w", p.FullPath, err)
		}
		parts = append(parts, "## Document: "+filepath.ToSlash(p.RelPath())+"\n"+string(content))
	}

	return strings.Join(parts, "\n\n"), nil
}
