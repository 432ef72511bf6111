// Package frontmatter renders a validated page into the builder's metadata
// block, applying the configured theme field renaming. Output is fully
// deterministic: keys are sorted recursively so unchanged input always
// yields byte-identical front matter.
package frontmatter

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/graphpress/graphpress/internal/config"
	"github.com/graphpress/graphpress/internal/page"
)

// TranslationLink is one sibling-language alternate of a page.
type TranslationLink struct {
	Lang string
	URL  string
}

// Emitter renders front matter blocks for one configured site.
type Emitter struct {
	cfg *config.Config
}

func NewEmitter(cfg *config.Config) *Emitter {
	return &Emitter{cfg: cfg}
}

// Emit renders the `---` delimited front matter for a page. Optional fields
// are emitted only when present, never as empty placeholders. Field names
// pass through the theme field map; values are untouched except the date,
// which is normalized to the canonical format.
func (e *Emitter) Emit(p *page.Page, url string, translations []TranslationLink) ([]byte, error) {
	fields := map[string]any{}
	set := func(name string, value any) {
		fields[e.cfg.ThemeField(name)] = value
	}

	set("title", p.Title)
	set("slug", p.Slug)
	set("type", p.Type)
	set("date", p.Date.Format(page.DateFormat))
	set("url", url)

	if p.Description != "" {
		set("description", p.Description)
	}
	if p.MenuOrder != "" {
		// Hugo expects a numeric weight; non-numeric values pass through as-is.
		if n, err := strconv.Atoi(p.MenuOrder); err == nil {
			set("weight", n)
		} else {
			set("weight", p.MenuOrder)
		}
	}
	if p.TranslationKey != "" {
		set("translationKey", p.TranslationKey)
	}
	if p.TOC != nil {
		set("toc", *p.TOC)
		if *p.TOC {
			set("toc_open", true)
		}
	}
	if len(p.Tags) > 0 {
		set("tags", p.Tags)
	}
	if len(translations) > 0 {
		list := make([]any, 0, len(translations))
		for _, tr := range translations {
			list = append(list, map[string]any{"lang": tr.Lang, "url": tr.URL})
		}
		set("translations", list)
	}

	body, err := serialize(fields)
	if err != nil {
		return nil, fmt.Errorf("serialize front matter for %s: %w", p.ID, err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(body)
	buf.WriteString("---\n")
	return buf.Bytes(), nil
}
