// Package sync applies a computed set of desired content files to the
// output directory: stale generated files are deleted first, then desired
// files are written. Every individual write is idempotent, so a rerun over
// unchanged input leaves the tree byte-identical and untouched.
package sync

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File is one desired output file, with a slash-separated path relative to
// the content root.
type File struct {
	Path    string
	Content []byte
}

// Stats summarizes what a sync changed.
type Stats struct {
	Written int // files created or updated
	Kept    int // files already up to date
	Deleted int // stale files removed
}

// Sync reconciles the content root with the desired file set. Only .md
// files are subject to stale deletion; anything else under the root is left
// alone. Deletions run before writes so a crash leaves at worst a stale set
// of files, never a corrupted mix.
func Sync(root string, desired []File) (Stats, error) {
	var stats Stats

	want := make(map[string]File, len(desired))
	for _, f := range desired {
		want[f.Path] = f
	}

	stale, err := findStale(root, want)
	if err != nil {
		return stats, err
	}
	for _, rel := range stale {
		if err := os.Remove(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			return stats, fmt.Errorf("delete stale file %s: %w", rel, err)
		}
		stats.Deleted++
	}
	if err := pruneEmptyDirs(root); err != nil {
		return stats, err
	}

	// Deterministic write order keeps logs and failures reproducible.
	paths := make([]string, 0, len(want))
	for p := range want {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		f := want[p]
		abs := filepath.Join(root, filepath.FromSlash(p))
		if existing, err := os.ReadFile(abs); err == nil && string(existing) == string(f.Content) {
			stats.Kept++
			continue
		}
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return stats, fmt.Errorf("create directory for %s: %w", p, err)
		}
		if err := os.WriteFile(abs, f.Content, 0o644); err != nil {
			return stats, fmt.Errorf("write %s: %w", p, err)
		}
		stats.Written++
	}

	return stats, nil
}

// Clean removes the content root entirely (full resynchronization).
func Clean(root string) error {
	if err := os.RemoveAll(root); err != nil {
		return fmt.Errorf("clean output root: %w", err)
	}
	return nil
}

// findStale walks the root and returns generated files absent from the
// desired set, sorted for deterministic deletion order.
func findStale(root string, want map[string]File) ([]string, error) {
	var stale []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && p == root {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if _, ok := want[rel]; !ok {
			stale = append(stale, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan output root: %w", err)
	}
	sort.Strings(stale)
	return stale, nil
}

// pruneEmptyDirs removes directories left empty by stale deletion, deepest
// first. The root itself is kept.
func pruneEmptyDirs(root string) error {
	var dirs []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && p == root {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() && p != root {
			dirs = append(dirs, p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan for empty directories: %w", err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dirs)))
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			if err := os.Remove(dir); err != nil {
				return err
			}
		}
	}
	return nil
}
