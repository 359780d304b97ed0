package main

import (
	"fmt"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	pages := deps.Catalog.Pages()

	if c.JSON {
		return writeJSON(deps.Stdout, pages)
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages indexed. Markdown files belong under <root>/<version>/<locale>/.")
		return nil
	}

	for _, p := range pages {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", p.Version, p.Locale, p.FilePath)
	}

	return nil
}
