package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docset/fs"
	docslog "github.com/fwojciec/docset/slog"
	"github.com/fwojciec/docset/yaml"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is fine; flags and the environment still apply.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Catalog built by Run. Exposed for end-to-end testing.
	Catalog *fs.Catalog
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docset"),
		kong.Description("Query versioned, localized markdown documentation"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docset --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	versions, err := yaml.LoadVersions(cli.Config, cli.Key)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set DOCSET_CONFIG to the file declaring the known versions")
		return fmt.Errorf("failed to load versions from %q: %w", cli.Config, err)
	}

	// Build the catalog once; every command reads from it.
	begin := time.Now()
	catalog, err := fs.OpenCatalog(cli.Root, versions)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set DOCSET_ROOT to the directory holding <version>/<locale>/ trees")
		return fmt.Errorf("failed to open catalog at %q: %w", cli.Root, err)
	}
	docslog.LogScan(logger, docslog.ScanStats{
		Root:     catalog.Root(),
		Pages:    len(catalog.Pages()),
		Skipped:  catalog.Skipped(),
		Duration: time.Since(begin),
	})
	m.Catalog = catalog

	deps.Versions = versions
	deps.Index = catalog
	deps.Catalog = docslog.NewLoggingCatalog(catalog, logger)

	return kongCtx.Run(deps)
}
