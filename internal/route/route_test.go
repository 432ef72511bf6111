package route

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphpress/graphpress/internal/config"
	"github.com/graphpress/graphpress/internal/errors"
	"github.com/graphpress/graphpress/internal/page"
)

func testResolver(t *testing.T) *Resolver {
	t.Helper()
	cfg := &config.Config{
		Languages: map[string]string{"fr": "fr", "en": "en", "zh_TW": ""},
		Sections: map[string]string{
			"home": "",
			"cv":   "cv",
			"post": "blog",
			"page": "",
		},
	}
	cfg.Normalize()
	return NewResolver(cfg)
}

func TestResolve_Post(t *testing.T) {
	r := testResolver(t)
	rt, err := r.Resolve(&page.Page{ID: "a", Type: "post", Lang: "fr", Slug: "my-post"})
	require.Nil(t, err)
	require.Equal(t, "fr/blog/my-post.md", rt.Path)
	require.Equal(t, "/fr/blog/my-post/", rt.URL)
}

func TestResolve_SectionIndex(t *testing.T) {
	r := testResolver(t)
	rt, err := r.Resolve(&page.Page{ID: "a", Type: "cv", Lang: "en", Slug: "cv"})
	require.Nil(t, err)
	require.Equal(t, "en/cv/_index.md", rt.Path)
	require.Equal(t, "/en/cv/", rt.URL)
}

func TestResolve_EmptySectionCollapsesToLangRoot(t *testing.T) {
	r := testResolver(t)
	rt, err := r.Resolve(&page.Page{ID: "a", Type: "home", Lang: "fr", Slug: "home"})
	require.Nil(t, err)
	require.Equal(t, "fr/_index.md", rt.Path)
	require.Equal(t, "/fr/", rt.URL)
}

func TestResolve_LangFolderNormalized(t *testing.T) {
	r := testResolver(t)
	rt, err := r.Resolve(&page.Page{ID: "a", Type: "post", Lang: "zh_TW", Slug: "hello"})
	require.Nil(t, err)
	require.Equal(t, "zh-tw/blog/hello.md", rt.Path)
	require.Equal(t, "/zh-tw/blog/hello/", rt.URL)
}

func TestResolve_UnmappedType(t *testing.T) {
	cfg := &config.Config{
		Languages: map[string]string{"fr": "fr"},
		Sections:  map[string]string{"post": "blog"},
	}
	cfg.Normalize()
	r := NewResolver(cfg)

	_, err := r.Resolve(&page.Page{ID: "a", Type: "gallery", Lang: "fr", Slug: "x"})
	require.NotNil(t, err)
	require.Equal(t, errors.KindUnmappedType, err.Kind)
}

func TestResolve_Deterministic(t *testing.T) {
	r := testResolver(t)
	p := &page.Page{ID: "a", Type: "post", Lang: "fr", Slug: "same"}

	first, err := r.Resolve(p)
	require.Nil(t, err)
	second, err := r.Resolve(p)
	require.Nil(t, err)
	require.Equal(t, first, second)
}
