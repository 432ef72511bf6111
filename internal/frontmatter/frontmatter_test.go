package frontmatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/graphpress/graphpress/internal/config"
	"github.com/graphpress/graphpress/internal/page"
)

func testEmitter(t *testing.T, themeParams map[string]string) *Emitter {
	t.Helper()
	cfg := &config.Config{
		Languages:   map[string]string{"fr": "fr", "en": "en"},
		Sections:    map[string]string{"post": "blog"},
		ThemeParams: themeParams,
	}
	cfg.Normalize()
	return NewEmitter(cfg)
}

func testPage() *page.Page {
	return &page.Page{
		ID:    "pages/test.md",
		Title: "Test",
		Lang:  "fr",
		Type:  "post",
		Slug:  "test",
		Date:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestEmit_MinimalPost(t *testing.T) {
	e := testEmitter(t, nil)
	out, err := e.Emit(testPage(), "/fr/blog/test/", nil)
	require.NoError(t, err)

	s := string(out)
	require.True(t, strings.HasPrefix(s, "---\n"))
	require.True(t, strings.HasSuffix(s, "---\n"))
	require.Contains(t, s, "title: Test\n")
	require.Contains(t, s, "slug: test\n")
	require.Contains(t, s, "date: \"2026-01-01\"\n")
	require.Contains(t, s, "url: /fr/blog/test/\n")
	// Absent optional fields never appear as empty placeholders.
	require.NotContains(t, s, "description")
	require.NotContains(t, s, "weight")
	require.NotContains(t, s, "translation")
	require.NotContains(t, s, "tags")
}

func TestEmit_Deterministic(t *testing.T) {
	e := testEmitter(t, nil)
	p := testPage()
	p.Tags = []string{"a", "b"}
	p.Description = "desc"

	first, err := e.Emit(p, "/fr/blog/test/", nil)
	require.NoError(t, err)
	second, err := e.Emit(p, "/fr/blog/test/", nil)
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))
}

func TestEmit_ThemeFieldMapRenames(t *testing.T) {
	e := testEmitter(t, map[string]string{"toc": "ShowToc", "toc_open": "TocOpen"})
	p := testPage()
	toc := true
	p.TOC = &toc

	out, err := e.Emit(p, "/fr/blog/test/", nil)
	require.NoError(t, err)
	require.Contains(t, string(out), "ShowToc: true\n")
	require.Contains(t, string(out), "TocOpen: true\n")
	require.NotContains(t, string(out), "toc:")
}

func TestEmit_TocFalseEmittedAsBoolean(t *testing.T) {
	e := testEmitter(t, map[string]string{"toc": "ShowToc"})
	p := testPage()
	toc := false
	p.TOC = &toc

	out, err := e.Emit(p, "/fr/blog/test/", nil)
	require.NoError(t, err)
	require.Contains(t, string(out), "ShowToc: false\n")
	require.NotContains(t, string(out), "TocOpen")
}

func TestEmit_TranslationLinks(t *testing.T) {
	e := testEmitter(t, nil)
	p := testPage()
	p.TranslationKey = "X"

	out, err := e.Emit(p, "/fr/blog/test/", []TranslationLink{
		{Lang: "en", URL: "/en/blog/test/"},
	})
	require.NoError(t, err)

	s := string(out)
	require.Contains(t, s, "translationKey: X\n")
	require.Contains(t, s, "translations:\n")
	require.Contains(t, s, "lang: en")
	require.Contains(t, s, "url: /en/blog/test/")
}

func TestEmit_NumericWeight(t *testing.T) {
	e := testEmitter(t, nil)
	p := testPage()
	p.MenuOrder = "3"

	out, err := e.Emit(p, "/fr/blog/test/", nil)
	require.NoError(t, err)
	require.Contains(t, string(out), "weight: 3\n")
}

func TestEmit_Tags(t *testing.T) {
	e := testEmitter(t, nil)
	p := testPage()
	p.Tags = []string{"Golang", "Hugo"}

	out, err := e.Emit(p, "/fr/blog/test/", nil)
	require.NoError(t, err)
	require.Contains(t, string(out), "tags:\n  - Golang\n  - Hugo\n")
}
