package main

import "fmt"

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	skipped := deps.Index.Skipped()

	fmt.Fprintf(deps.Stdout, "root:        %s\n", deps.Index.Root())
	fmt.Fprintf(deps.Stdout, "pages:       %d\n", len(deps.Catalog.Pages()))
	fmt.Fprintf(deps.Stdout, "versions:    %d\n", len(deps.Index.KnownVersions()))
	fmt.Fprintf(deps.Stdout, "skipped:     %d\n", len(skipped))
	fmt.Fprintf(deps.Stdout, "fingerprint: %s\n", deps.Index.Fingerprint())

	for _, path := range skipped {
		fmt.Fprintf(deps.Stdout, "  skipped %s\n", path)
	}

	return nil
}
