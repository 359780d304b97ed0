// Package fs provides the filesystem-backed documentation catalog.
package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/docset"
)

// Walk returns the paths of all files beneath root, relative to root, in
// lexical order. Directory entries are not reported.
//
// Symbolic links are followed: a link to a file is reported as a file and a
// link to a directory is walked under the link's own path. A dangling link or
// a link back to one of its own ancestors fails the walk.
func Walk(root string) ([]string, error) {
	paths := []string{}
	real, err := filepath.EvalSymlinks(root)
	if err == nil {
		err = walkDir(real, "", nil, &paths)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", root, err)
	}
	return paths, nil
}

// walkDir appends the files beneath dir to paths, each prefixed with prefix.
// dir must not itself be a symlink. chain holds the real parent directories of
// the links followed to reach dir.
func walkDir(dir, prefix string, chain []string, paths *[]string) error {
	return filepath.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.Join(prefix, rel)

		if d.Type()&iofs.ModeSymlink == 0 {
			*paths = append(*paths, rel)
			return nil
		}

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("broken symlink %q: %w", rel, err)
		}
		if !info.IsDir() {
			*paths = append(*paths, rel)
			return nil
		}

		target, parent, err := resolveDirLink(path, rel, chain)
		if err != nil {
			return err
		}
		return walkDir(target, rel, append(slices.Clip(chain), parent), paths)
	})
}

// resolveDirLink returns the real paths of the directory link at path and of
// its parent. Returns EINVALID if the link resolves to a directory already
// being walked: its own parent, an ancestor, or one along chain.
func resolveDirLink(path, rel string, chain []string) (target, parent string, err error) {
	target, err = filepath.EvalSymlinks(path)
	if err != nil {
		return "", "", err
	}
	parent, err = filepath.EvalSymlinks(filepath.Dir(path))
	if err != nil {
		return "", "", err
	}
	for _, dir := range append(slices.Clip(chain), parent) {
		if within(dir, target) {
			return "", "", docset.Errorf(docset.EINVALID, "symlink %q loops back to %q", rel, target)
		}
	}
	return target, parent, nil
}

// within reports whether dir is ancestor or equal to path.
func within(path, dir string) bool {
	if path == dir {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(dir, string(filepath.Separator))+string(filepath.Separator))
}
