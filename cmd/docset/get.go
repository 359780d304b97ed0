package main

import (
	"fmt"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/fs"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	docs, err := deps.Catalog.Docset(deps.Ctx, c.Version, c.Locale)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, docs)
	}

	version, locale := docset.ResolveDocset(deps.Versions, c.Version, c.Locale)

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stdout, "No pages for %s/%s. Use 'docset versions' to see available locales.\n", version, locale)
		return nil
	}

	if c.Full {
		content, err := fs.FormatPages(docs)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		fmt.Fprintln(deps.Stdout, content)
		return nil
	}

	// Print summary listing
	fmt.Fprintf(deps.Stdout, "Docset %s/%s (%d pages):\n\n", version, locale, len(docs))
	for i, doc := range docs {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", i+1, doc.FilePath, doc.FullPath)
	}

	return nil
}
