package site

import (
	"fmt"
	"sort"

	"github.com/graphpress/graphpress/internal/errors"
	"github.com/graphpress/graphpress/internal/page"
)

// TranslationLinker groups pages sharing a translation key so the emitted
// front matter can carry sibling-language links.
type TranslationLinker struct {
	groups map[string]map[string]*page.Page // key -> lang -> page
}

func NewTranslationLinker() *TranslationLinker {
	return &TranslationLinker{groups: map[string]map[string]*page.Page{}}
}

// Register records a page under its translation key. Pages without a key
// are ignored (not an error). A second page with the same key and language
// is a DuplicateTranslation naming both sources.
func (l *TranslationLinker) Register(p *page.Page) *errors.EngineError {
	if p.TranslationKey == "" {
		return nil
	}
	group, ok := l.groups[p.TranslationKey]
	if !ok {
		group = map[string]*page.Page{}
		l.groups[p.TranslationKey] = group
	}
	if first, ok := group[p.Lang]; ok {
		return errors.New(errors.KindDuplicateTranslation, errors.CategoryValidation, p.ID,
			fmt.Sprintf("translation key %q already has a %s page (%s)", p.TranslationKey, p.Lang, first.ID)).
			WithContext("translationKey", p.TranslationKey).
			WithContext("lang", p.Lang).
			WithContext("first", first.ID)
	}
	group[p.Lang] = p
	return nil
}

// Siblings returns the other-language pages sharing p's translation key,
// sorted by language for deterministic emission. Empty when p has no key
// or no alternates exist.
func (l *TranslationLinker) Siblings(p *page.Page) []*page.Page {
	if p.TranslationKey == "" {
		return nil
	}
	group := l.groups[p.TranslationKey]
	out := make([]*page.Page, 0, len(group))
	for lang, sibling := range group {
		if lang == p.Lang {
			continue
		}
		out = append(out, sibling)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Lang < out[j].Lang })
	return out
}
