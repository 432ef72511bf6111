// Package site holds the two shared accumulators of a run: the slug
// registry and the translation linker. Both are pure accumulation
// structures filled during the validation phase; updates must be serialized
// by the caller if pages are processed concurrently.
package site

import (
	"fmt"

	"github.com/graphpress/graphpress/internal/errors"
)

type slugKey struct {
	Lang string
	Type string
	Slug string
}

// SlugRegistry tracks (lang, type, slug) triples and detects collisions.
type SlugRegistry struct {
	seen map[slugKey]string // key -> source id of first registrant
}

func NewSlugRegistry() *SlugRegistry {
	return &SlugRegistry{seen: map[slugKey]string{}}
}

// Register records a triple for a public page. On collision it returns a
// DuplicateSlug naming both sources; registration of further pages
// continues so every collision in a run is reported.
func (r *SlugRegistry) Register(lang, typ, slug, sourceID string) *errors.EngineError {
	key := slugKey{Lang: lang, Type: typ, Slug: slug}
	if first, ok := r.seen[key]; ok {
		return errors.New(errors.KindDuplicateSlug, errors.CategoryValidation, sourceID,
			fmt.Sprintf("slug %q already used for (%s, %s) by %s", slug, lang, typ, first)).
			WithContext("lang", lang).
			WithContext("type", typ).
			WithContext("slug", slug).
			WithContext("first", first)
	}
	r.seen[key] = sourceID
	return nil
}

// Len returns the number of registered triples.
func (r *SlugRegistry) Len() int { return len(r.seen) }
