package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/fwojciec/docset"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Versions docset.Versions
	Catalog  docset.Catalog
	Index    docset.Index
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root    string `short:"r" default:"content" env:"DOCSET_ROOT" help:"Content root holding <version>/<locale>/ trees"`
	Config  string `short:"c" default:"package.json" env:"DOCSET_CONFIG" help:"JSON or YAML file declaring the known versions"`
	Key     string `default:"nodeVersions" env:"DOCSET_VERSIONS_KEY" help:"Top-level key holding the versions (empty for the whole file)"`
	Verbose bool   `short:"v" help:"Log catalog scan and queries"`

	Pages    PagesCmd    `cmd:"" help:"List every indexed page"`
	Get      GetCmd      `cmd:"" help:"List the pages of one version and locale"`
	Versions VersionsCmd `cmd:"" help:"List known versions and their locales"`
	Stats    StatsCmd    `cmd:"" help:"Show catalog statistics"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	JSON bool `help:"Print pages as JSON"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	Version string `arg:"" optional:"" help:"Version (default: latest)"`
	Locale  string `arg:"" optional:"" help:"Locale (default: en-US)"`
	JSON    bool   `help:"Print pages as JSON"`
	Full    bool   `help:"Print full page content"`
}

// VersionsCmd is the "versions" subcommand.
type VersionsCmd struct{}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

func writeJSON(w io.Writer, pages []*docset.Page) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(pages)
}
