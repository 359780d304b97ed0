package main

import (
	"fmt"
	"strings"
)

// Run executes the versions command.
func (c *VersionsCmd) Run(deps *Dependencies) error {
	known := deps.Index.KnownVersions()

	for i, v := range known {
		label := v
		if i == 0 {
			label += " (latest)"
		}
		c.printLocales(deps, label, v)
	}

	// On-disk versions missing from configuration.
	for _, v := range deps.Index.Versions() {
		if known.Contains(v) {
			continue
		}
		c.printLocales(deps, v+" (not configured)", v)
	}

	return nil
}

func (c *VersionsCmd) printLocales(deps *Dependencies, label, version string) {
	locales := deps.Index.Locales(version)
	if len(locales) == 0 {
		fmt.Fprintf(deps.Stdout, "%s  (no pages)\n", label)
		return
	}
	fmt.Fprintf(deps.Stdout, "%s  %s\n", label, strings.Join(locales, ", "))
}
