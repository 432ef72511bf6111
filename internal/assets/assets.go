// Package assets resolves local media references: each asset referenced by
// a page body is scheduled for copying into the shared static asset
// directory and the in-body reference is rewritten to its published path.
//
// Computation is split from application so phase 1 stays pure: Resolve only
// stats the source file; the returned copies are performed in phase 2.
package assets

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/graphpress/graphpress/internal/config"
	"github.com/graphpress/graphpress/internal/errors"
	"github.com/graphpress/graphpress/internal/logfields"
	"github.com/graphpress/graphpress/internal/markdown"
)

// PublishedPrefix is the site-absolute path assets are served from.
const PublishedPrefix = "/assets/"

// Copy is one pending asset copy from the graph into the output tree.
type Copy struct {
	// Src is the absolute path of the source asset.
	Src string
	// Name is the slash-separated path under the published asset directory,
	// mirroring the asset's location in the graph so same-named files in
	// different subdirectories never collide.
	Name string
}

// Resolver resolves body asset references against the graph's asset
// directory.
type Resolver struct {
	assetDir string // <graph>/assets
	policy   config.AssetPolicy
}

func NewResolver(graphDir string, policy config.AssetPolicy) *Resolver {
	return &Resolver{assetDir: filepath.Join(graphDir, "assets"), policy: policy}
}

// Resolve scans a converted body for local asset references, verifies each
// against the graph's asset directory, and rewrites references to their
// published path. Missing assets follow the configured policy: strict makes
// them validation errors, lenient logs a warning and leaves the reference
// unrewritten.
func (r *Resolver) Resolve(pageID, body string) (string, []Copy, *errors.List) {
	var list errors.List
	var copies []Copy
	seen := map[string]struct{}{}

	for _, link := range markdown.ExtractLinks([]byte(body)) {
		rel, ok := assetRelPath(link.Destination)
		if !ok {
			continue
		}
		if _, done := seen[link.Destination]; done {
			continue
		}
		seen[link.Destination] = struct{}{}

		src := filepath.Join(r.assetDir, filepath.FromSlash(rel))
		if info, err := os.Stat(src); err != nil || info.IsDir() {
			if r.policy == config.AssetPolicyStrict {
				list.Add(errors.New(errors.KindAssetNotFound, errors.CategoryAssets, pageID,
					fmt.Sprintf("referenced asset %q not found in graph assets", link.Destination)).
					WithContext("path", link.Destination))
			} else {
				slog.Warn("Referenced asset not found, leaving reference unrewritten",
					logfields.Page(pageID), logfields.Asset(link.Destination))
			}
			continue
		}

		copies = append(copies, Copy{Src: src, Name: rel})
		body = strings.ReplaceAll(body, link.Destination, PublishedPrefix+rel)
	}

	return body, copies, &list
}

// assetRelPath extracts the path relative to the asset directory from a
// reference, or reports that the destination is not a local asset.
func assetRelPath(dest string) (string, bool) {
	if markdown.IsRemote(dest) {
		return "", false
	}
	cleaned := path.Clean(strings.ReplaceAll(dest, "\\", "/"))
	if rel, ok := strings.CutPrefix(cleaned, "../assets/"); ok {
		return rel, true
	}
	if rel, ok := strings.CutPrefix(cleaned, "assets/"); ok {
		return rel, true
	}
	return "", false
}

// Apply performs the pending copies into destDir (the published asset
// directory), creating subdirectories on demand. Copies are idempotent: an
// up-to-date destination is left untouched.
func Apply(copies []Copy, destDir string) error {
	for _, c := range copies {
		data, err := os.ReadFile(c.Src)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", c.Src, err)
		}
		dst := filepath.Join(destDir, filepath.FromSlash(c.Name))
		if existing, err := os.ReadFile(dst); err == nil && string(existing) == string(data) {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("create asset directory: %w", err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("write asset %s: %w", dst, err)
		}
	}
	return nil
}
