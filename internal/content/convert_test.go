package content

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphpress/graphpress/internal/config"
)

func testConverter(t *testing.T) *Converter {
	t.Helper()
	cfg := &config.Config{
		Languages: map[string]string{"fr": "fr", "en": "en"},
		Sections:  map[string]string{"post": "blog"},
	}
	cfg.Normalize()
	return NewConverter(cfg)
}

func TestConvert_BulletsFlatten(t *testing.T) {
	c := testConverter(t)
	in := "- First paragraph\n- Second paragraph\n\t- nested item\n\t\t- deeper item\n"
	out := c.Convert(in, "fr")

	require.Equal(t, "First paragraph\nSecond paragraph\n- nested item\n  - deeper item", out)
}

func TestConvert_EmptyBulletBecomesBlankLine(t *testing.T) {
	c := testConverter(t)
	out := c.Convert("- one\n-\n- two\n", "fr")
	require.Equal(t, "one\n\ntwo", out)
}

func TestConvert_StripsSerializedMetadata(t *testing.T) {
	c := testConverter(t)
	in := "- text\n  collapsed:: true\n  id:: 65a1b2c3-dead-beef-0000-111122223333\n- more\n"
	out := c.Convert(in, "fr")

	require.NotContains(t, out, "collapsed")
	require.NotContains(t, out, "65a1b2c3")
}

func TestConvert_InternalKeyBulletDropped(t *testing.T) {
	c := testConverter(t)
	out := c.Convert("- heading:: 2\n- kept\n", "fr")
	require.Equal(t, "kept", out)
}

func TestConvert_CustomKeyBulletKeepsValue(t *testing.T) {
	c := testConverter(t)
	out := c.Convert("- logo:: ![](logo.png)\n", "fr")
	require.Equal(t, "![](logo.png)", out)
}

func TestConvert_Highlight(t *testing.T) {
	c := testConverter(t)
	out := c.Convert("- some ^^highlighted^^ text\n", "fr")
	require.Equal(t, "some <mark>highlighted</mark> text", out)
}

func TestConvert_WikiRefsBecomePlainText(t *testing.T) {
	c := testConverter(t)
	out := c.Convert("- see [[Another Page]] and #[[Tagged Page]]\n", "fr")
	require.Equal(t, "see Another Page and Tagged Page", out)
}

func TestConvert_TagsBecomeTaxonomyLinks(t *testing.T) {
	c := testConverter(t)
	out := c.Convert("- about #Golang today\n", "fr")
	require.Equal(t, "about [#Golang](/fr/tags/golang/) today", out)
}

func TestConvert_HeadingsAreNotTags(t *testing.T) {
	c := testConverter(t)
	out := c.Convert("## A Heading\n", "fr")
	require.Equal(t, "## A Heading", out)
}

func TestConvert_Admonition(t *testing.T) {
	c := testConverter(t)
	in := "#+BEGIN_NOTE\nRemember this.\n#+END_NOTE\n"
	out := c.Convert(in, "fr")

	require.Contains(t, out, "> **📝 NOTE**")
	require.Contains(t, out, "> Remember this.")
}

func TestConvert_AdmonitionUnknownKindGetsDefaultIcon(t *testing.T) {
	c := testConverter(t)
	out := c.Convert("#+BEGIN_ASIDE\ntext\n#+END_ASIDE\n", "fr")
	require.Contains(t, out, "> **ℹ️ ASIDE**")
}

func TestConvert_MismatchedAdmonitionLeftAlone(t *testing.T) {
	c := testConverter(t)
	out := c.Convert("#+BEGIN_NOTE\ntext\n#+END_TIP\n", "fr")
	require.Contains(t, out, "#+BEGIN_NOTE")
}

func TestConvert_YouTubeEmbed(t *testing.T) {
	c := testConverter(t)
	out := c.Convert("- {{video https://www.youtube.com/watch?v=dQw4w9WgXcQ}}\n", "fr")
	require.Equal(t, "{{< youtube dQw4w9WgXcQ >}}", out)
}

func TestConvert_PlainVideoEmbed(t *testing.T) {
	c := testConverter(t)
	out := c.Convert("{{video https://example.org/clip.mp4}}\n", "fr")
	require.Contains(t, out, `<video src="https://example.org/clip.mp4" controls></video>`)
}

func TestConvert_SizedImage(t *testing.T) {
	c := testConverter(t)
	out := c.Convert("- ![diagram](../assets/d.png){:height 300, :width 500}\n", "fr")
	require.Contains(t, out, `<img src="../assets/d.png" alt="diagram" width="500">`)
	// Raw HTML gets blank lines around it.
	require.NotContains(t, out, ">\ntext")
}

func TestConvert_SizedImageHeightOnly(t *testing.T) {
	c := testConverter(t)
	out := c.Convert("![](../assets/d.png){:height 300}\n", "fr")
	require.Contains(t, out, `<img src="../assets/d.png" height="300">`)
}

func TestConvert_CollapsesBlankRuns(t *testing.T) {
	c := testConverter(t)
	out := c.Convert("a\n\n\n\n\nb\n", "fr")
	require.Equal(t, "a\n\n\nb", out)
}

func TestExtractTags(t *testing.T) {
	body := "- learning #Golang and #Hugo\n- more #Golang\n"
	require.Equal(t, []string{"Golang", "Hugo"}, ExtractTags(body))
}

func TestExtractTags_None(t *testing.T) {
	require.Nil(t, ExtractTags("no tags here\n## heading\n"))
}
