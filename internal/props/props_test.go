package props

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_LeadingBlock(t *testing.T) {
	in := "title:: My Page\npublic:: true\ntranslationKey:: home\n\nBody starts here.\nmore body\n"
	b := Parse(in)

	require.Equal(t, map[string]string{
		"title":          "My Page",
		"public":         "true",
		"translationKey": "home",
	}, b.Props)
	require.Equal(t, "Body starts here.\nmore body\n", b.Body)
}

func TestParse_NoBlock(t *testing.T) {
	in := "Just a body.\nNo properties at all.\n"
	b := Parse(in)

	require.Empty(t, b.Props)
	require.Equal(t, in, b.Body)
}

func TestParse_BlockEndsAtFirstNonPropertyLine(t *testing.T) {
	in := "title:: T\n- a bullet\nslug:: not-a-prop-anymore\n"
	b := Parse(in)

	require.Equal(t, map[string]string{"title": "T"}, b.Props)
	require.Equal(t, "- a bullet\nslug:: not-a-prop-anymore\n", b.Body)
}

func TestParse_UnrecognizedKeysPassThrough(t *testing.T) {
	in := "title:: T\ncover:: ![](../assets/cover.png)\n"
	b := Parse(in)

	require.Equal(t, "![](../assets/cover.png)", b.Props["cover"])
}

func TestParse_KeysAreCaseSensitive(t *testing.T) {
	in := "Title:: Upper\ntitle:: lower\n"
	b := Parse(in)

	require.Equal(t, "Upper", b.Props["Title"])
	require.Equal(t, "lower", b.Props["title"])
}

func TestParse_CRLF(t *testing.T) {
	in := "title:: T\r\npublic:: true\r\n\r\nbody\r\n"
	b := Parse(in)

	require.Equal(t, "T", b.Props["title"])
	require.Equal(t, "true", b.Props["public"])
	require.Contains(t, b.Body, "body")
}

func TestParse_EmptyValue(t *testing.T) {
	b := Parse("description::\nbody\n")
	require.Equal(t, "", b.Props["description"])
}
