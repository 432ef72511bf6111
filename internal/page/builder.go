package page

import (
	"fmt"
	"strings"
	"time"

	"github.com/graphpress/graphpress/internal/config"
	"github.com/graphpress/graphpress/internal/errors"
)

// Builder validates raw property mappings into Page records. It is pure:
// the same inputs always produce the same record, with the run date injected
// explicitly so date defaulting stays deterministic under test.
type Builder struct {
	cfg *config.Config
	now time.Time
}

func NewBuilder(cfg *config.Config, now time.Time) *Builder {
	return &Builder{cfg: cfg, now: now}
}

// requiredFields returns the required property set for a resolved type.
// public is implicitly present on every page that reaches validation.
func requiredFields(typ string) []string {
	base := []string{"title", "lang", "type", "slug"}
	if typ == "post" || typ == "blog" {
		return append(base, "date")
	}
	return base
}

// Build turns parsed properties plus body into a validated Page.
//
// A page whose public property is absent, false, or unparseable is returned
// with Public=false and no errors: private notes are the common case in a
// graph and must never block a run. Validation applies to public pages only.
func (b *Builder) Build(id string, raw map[string]string, body string) (*Page, *errors.List) {
	var list errors.List

	p := &Page{
		ID:     id,
		Body:   body,
		Public: parseBool(raw["public"]),
	}
	if !p.Public {
		return p, &list
	}

	// Domain checks apply to present values; absence is reported by the
	// required-field pass below so the author sees the right fault name.
	p.Type = strings.TrimSpace(raw["type"])
	if p.Type != "" && !b.cfg.HasType(p.Type) {
		list.Add(errors.New(errors.KindUnknownType, errors.CategoryValidation, id,
			fmt.Sprintf("type %q is not in the configured type domain", p.Type)))
		return p, &list
	}

	p.Lang = strings.TrimSpace(raw["lang"])
	if p.Lang != "" && !b.cfg.HasLang(p.Lang) {
		list.Add(errors.New(errors.KindUnknownLang, errors.CategoryValidation, id,
			fmt.Sprintf("lang %q is not in the configured language domain", p.Lang)))
		return p, &list
	}

	// Every missing required field is reported, not just the first.
	missing := false
	for _, field := range requiredFields(p.Type) {
		if strings.TrimSpace(raw[field]) == "" {
			list.Add(errors.New(errors.KindMissingRequiredProperty, errors.CategoryValidation, id,
				fmt.Sprintf("required property %q is missing", field)).
				WithContext("field", field))
			missing = true
		}
	}
	if missing {
		return p, &list
	}

	p.Title = strings.TrimSpace(raw["title"])
	p.Slug = strings.TrimSpace(raw["slug"])
	p.Description = strings.TrimSpace(raw["description"])
	p.MenuOrder = strings.TrimSpace(raw["menu_order"])
	p.TranslationKey = strings.TrimSpace(raw["translationKey"])

	if v, ok := raw["toc"]; ok {
		toc := parseBool(v)
		p.TOC = &toc
	}

	date, err := b.resolveDate(p.Type, raw["date"])
	if err != nil {
		list.Add(errors.New(errors.KindMalformedDate, errors.CategoryValidation, id,
			fmt.Sprintf("date %q is not a valid %s date", raw["date"], DateFormat)).
			WithContext("value", raw["date"]))
		return p, &list
	}
	p.Date = date

	return p, &list
}

// resolveDate parses the date property. Articles must carry a well-formed
// date (absence was already caught by the required-field check); for other
// types any missing or malformed value degrades to the run date.
func (b *Builder) resolveDate(typ, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	article := typ == "post" || typ == "blog"
	if raw == "" {
		return b.now, nil
	}
	d, err := time.Parse(DateFormat, raw)
	if err != nil {
		if article {
			return time.Time{}, err
		}
		return b.now, nil
	}
	return d, nil
}

// parseBool is the fail-closed boolean parser for page properties: anything
// that is not an explicit affirmative reads as false.
func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
