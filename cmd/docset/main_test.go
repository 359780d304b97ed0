package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docset"
	main "github.com/fwojciec/docset/cmd/docset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFixture writes a content tree and a package.json declaring versions 20 and 18.
func newFixture(t *testing.T) (root, config string) {
	t.Helper()

	dir := t.TempDir()
	root = filepath.Join(dir, "content")
	for _, p := range []string{
		"18/en-US/guide.md",
		"18/en-US/api/fs.md",
		"18/es-ES/guide.md",
		"20/en-US/guide.md",
		"20/en-US/logo.png",
	} {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("# doc\n"), 0644))
	}

	config = filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(config, []byte(`{"nodeVersions": {"20": {}, "18": {}}}`), 0644))
	return root, config
}

func run(t *testing.T, args ...string) (*main.Main, string, string, error) {
	t.Helper()

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return m, stdout.String(), stderr.String(), err
}

func TestMain_Run_NoArgsShowsHelpAndFails(t *testing.T) {
	t.Parallel()

	_, stdout, _, err := run(t)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, stdout, "get")
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	_, stdout, _, err := run(t, "--help")

	require.NoError(t, err)
	for _, cmd := range []string{"pages", "get", "versions", "stats"} {
		assert.Contains(t, stdout, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_Get(t *testing.T) {
	t.Parallel()

	t.Run("defaults to latest version and en-US", func(t *testing.T) {
		t.Parallel()

		root, config := newFixture(t)

		m, stdout, _, err := run(t, "--root", root, "--config", config, "get")

		require.NoError(t, err)
		require.NotNil(t, m.Catalog)
		assert.Len(t, m.Catalog.Pages(), 4)
		assert.Contains(t, stdout, "Docset 20/en-US (1 pages)")
		assert.Contains(t, stdout, "guide.md")
	})

	t.Run("prints JSON for an explicit version and locale", func(t *testing.T) {
		t.Parallel()

		root, config := newFixture(t)

		_, stdout, _, err := run(t, "--root", root, "--config", config, "get", "18", "en-US", "--json")

		require.NoError(t, err)
		var pages []*docset.Page
		require.NoError(t, json.Unmarshal([]byte(stdout), &pages))
		require.Len(t, pages, 2)
		for _, p := range pages {
			assert.Equal(t, "18", p.Version)
			assert.Equal(t, "en-US", p.Locale)
		}
	})

	t.Run("reports empty docset without failing", func(t *testing.T) {
		t.Parallel()

		root, config := newFixture(t)

		_, stdout, _, err := run(t, "--root", root, "--config", config, "get", "18", "fr-FR")

		require.NoError(t, err)
		assert.Contains(t, stdout, "No pages for 18/fr-FR")
	})

	t.Run("prints full content", func(t *testing.T) {
		t.Parallel()

		root, config := newFixture(t)

		_, stdout, _, err := run(t, "--root", root, "--config", config, "get", "20", "--full")

		require.NoError(t, err)
		assert.Contains(t, stdout, "## Document: 20/en-US/guide.md\n# doc")
	})

	t.Run("verbose logs scan and query", func(t *testing.T) {
		t.Parallel()

		root, config := newFixture(t)

		_, _, stderr, err := run(t, "--root", root, "--config", config, "--verbose", "get")

		require.NoError(t, err)
		assert.Contains(t, stderr, "catalog scan")
		assert.Contains(t, stderr, "pages=4")
		assert.Contains(t, stderr, "docset query")
	})
}

func TestMain_Run_Pages(t *testing.T) {
	t.Parallel()

	root, config := newFixture(t)

	_, stdout, _, err := run(t, "--root", root, "--config", config, "pages")

	require.NoError(t, err)
	assert.Contains(t, stdout, "18  es-ES  guide.md")
	assert.NotContains(t, stdout, "logo.png")
}

func TestMain_Run_Versions(t *testing.T) {
	t.Parallel()

	root, config := newFixture(t)

	_, stdout, _, err := run(t, "--root", root, "--config", config, "versions")

	require.NoError(t, err)
	assert.Contains(t, stdout, "20 (latest)  en-US")
	assert.Contains(t, stdout, "18  en-US, es-ES")
	assert.NotContains(t, stdout, "not configured")
}

func TestMain_Run_VersionsShowsUnconfigured(t *testing.T) {
	t.Parallel()

	// Given pages for version 16, which package.json does not declare
	root, config := newFixture(t)
	full := filepath.Join(root, "16", "en-US", "guide.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte("# old\n"), 0644))

	_, stdout, _, err := run(t, "--root", root, "--config", config, "versions")

	require.NoError(t, err)
	assert.Contains(t, stdout, "16 (not configured)  en-US")
}

func TestMain_Run_FollowsVersionAlias(t *testing.T) {
	t.Parallel()

	// Given version 22 published as a symlink to version 20
	root, _ := newFixture(t)
	require.NoError(t, os.Symlink("20", filepath.Join(root, "22")))
	config := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(config, []byte(`{"homepage": "https:\/\/nodejs.org", "nodeVersions": {"22": {}, "20": {}}}`), 0644))

	_, stdout, _, err := run(t, "--root", root, "--config", config, "get")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Docset 22/en-US (1 pages)")
}

func TestMain_Run_Stats(t *testing.T) {
	t.Parallel()

	root, config := newFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# readme\n"), 0644))

	_, stdout, stderr, err := run(t, "--root", root, "--config", config, "stats")

	require.NoError(t, err)
	assert.Contains(t, stdout, "pages:       4")
	assert.Contains(t, stdout, "skipped:     1")
	assert.Contains(t, stdout, "skipped README.md")
	assert.Contains(t, stdout, "fingerprint: ")
	// Skipped pages are warned about even without --verbose
	assert.Contains(t, stderr, "skipped page")
}

func TestMain_Run_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing content root", func(t *testing.T) {
		t.Parallel()

		_, config := newFixture(t)

		_, _, stderr, err := run(t, "--root", filepath.Join(t.TempDir(), "missing"), "--config", config, "pages")

		require.Error(t, err)
		assert.Equal(t, docset.ENOTFOUND, docset.ErrorCode(err))
		assert.Contains(t, stderr, "DOCSET_ROOT")
	})

	t.Run("missing versions config", func(t *testing.T) {
		t.Parallel()

		root, _ := newFixture(t)

		_, _, stderr, err := run(t, "--root", root, "--config", filepath.Join(t.TempDir(), "package.json"), "pages")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load versions")
		assert.Contains(t, stderr, "DOCSET_CONFIG")
	})
}
