// Package content converts a note body to builder-compatible Markdown/HTML:
// bullet flattening, admonition blocks, video embeds, highlights, wiki
// references, and tag links. Conversion is textual and in-place; asset
// reference rewriting is the asset resolver's job.
package content

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/graphpress/graphpress/internal/config"
)

// Admonition type -> emoji for the blockquote header.
var admonitionIcons = map[string]string{
	"NOTE":      "📝",
	"TIP":       "💡",
	"WARNING":   "⚠️",
	"CAUTION":   "🚨",
	"IMPORTANT": "❗",
	"EXAMPLE":   "📋",
	"QUOTE":     "💬",
	"PINNED":    "📌",
}

var (
	admonitionRe = regexp.MustCompile(`(?is)#\+BEGIN_(\w+)\n(.*?)\n#\+END_(\w+)`)
	videoRe      = regexp.MustCompile(`\{\{(?:video|youtube)\s+(https?://[^}]+)\}\}`)
	youtubeIDRe  = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]+)`)
	sizedImageRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)\{([^}]+)\}`)
	heightAttrRe = regexp.MustCompile(`:height\s+(\d+)`)
	widthAttrRe  = regexp.MustCompile(`:width\s+(\d+)`)
	highlightRe  = regexp.MustCompile(`\^\^(.+?)\^\^`)
	wikiRefRe    = regexp.MustCompile(`#?\[\[([^\]]+)\]\]`)
	collapsedRe  = regexp.MustCompile(`^\s*collapsed::\s*(true|false)`)
	idPropRe     = regexp.MustCompile(`^\s*id::\s+[a-f0-9-]{8}`)
	emptyBullet  = regexp.MustCompile(`^\t*-\s*$`)
	bulletRe     = regexp.MustCompile(`^(\t*)(- |\s{4})(.*)`)
	inlinePropRe = regexp.MustCompile(`^(\w[\w_-]*)::[ \t]*(.*)`)
	rawMediaRe   = regexp.MustCompile(`^\s*<(?:img|video)\s`)
	// No lookbehind in RE2; the leading group keeps the preceding character.
	tagRe = regexp.MustCompile(`(^|[^#\w])#(\w[\w/-]*)`)
)

// Converter rewrites note bodies for one configured site.
type Converter struct {
	cfg *config.Config
}

func NewConverter(cfg *config.Config) *Converter {
	return &Converter{cfg: cfg}
}

// Convert rewrites a body (property block already removed) for the given
// page language. Processing order mirrors the note tool's serialization:
// multi-line passes first, then line-by-line bullet and inline conversion,
// then HTML spacing and blank line cleanup.
func (c *Converter) Convert(body, lang string) string {
	text := convertAdmonitions(body)
	text = videoRe.ReplaceAllStringFunc(text, convertVideoEmbed)

	langFolder := c.cfg.LangFolder(lang)
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		// Note-tool serialized metadata is never content.
		if collapsedRe.MatchString(line) || idPropRe.MatchString(line) {
			continue
		}
		if emptyBullet.MatchString(line) {
			out = append(out, "")
			continue
		}

		if m := bulletRe.FindStringSubmatch(line); m != nil {
			tabs := len(m[1])
			item := m[3]

			// Inline property inside a bullet: internal keys drop the whole
			// line, custom keys (logo::, cover::, ...) keep the value only.
			if pm := inlinePropRe.FindStringSubmatch(strings.TrimSpace(item)); pm != nil {
				if c.cfg.IsInternalKey(pm[1]) {
					continue
				}
				item = strings.TrimSpace(pm[2])
			}

			item = c.convertInline(item, langFolder)
			if tabs == 0 {
				line = item
			} else {
				line = strings.Repeat("  ", tabs-1) + "- " + item
			}
		} else {
			line = c.convertInline(line, langFolder)
		}

		out = append(out, line)
	}

	out = spaceRawMedia(out)
	out = collapseBlankRuns(out, 2)
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// convertInline applies the single-line conversions: sized images,
// highlight marks, wiki references, and tag links.
func (c *Converter) convertInline(line, langFolder string) string {
	line = sizedImageRe.ReplaceAllStringFunc(line, convertSizedImage)
	line = highlightRe.ReplaceAllString(line, "<mark>$1</mark>")
	line = wikiRefRe.ReplaceAllString(line, "$1")
	line = tagRe.ReplaceAllStringFunc(line, func(m string) string {
		sm := tagRe.FindStringSubmatch(m)
		return fmt.Sprintf("%s[#%s](/%s/tags/%s/)", sm[1], sm[2], langFolder, strings.ToLower(sm[2]))
	})
	return line
}

// convertAdmonitions turns #+BEGIN_X...#+END_X blocks into emoji-styled
// blockquotes. RE2 has no backreferences, so mismatched BEGIN/END markers
// are verified by hand and left untouched.
func convertAdmonitions(text string) string {
	return admonitionRe.ReplaceAllStringFunc(text, func(m string) string {
		sm := admonitionRe.FindStringSubmatch(m)
		if !strings.EqualFold(sm[1], sm[3]) {
			return m
		}
		kind := strings.ToUpper(sm[1])
		icon, ok := admonitionIcons[kind]
		if !ok {
			icon = "ℹ️"
		}
		var quoted []string
		for _, line := range strings.Split(strings.TrimSpace(sm[2]), "\n") {
			quoted = append(quoted, "> "+line)
		}
		return fmt.Sprintf("> **%s %s**\n>\n%s", icon, kind, strings.Join(quoted, "\n"))
	})
}

// convertVideoEmbed turns {{video url}} into a Hugo youtube shortcode or a
// plain <video> tag.
func convertVideoEmbed(m string) string {
	sm := videoRe.FindStringSubmatch(m)
	url := strings.TrimSpace(sm[1])
	if yt := youtubeIDRe.FindStringSubmatch(url); yt != nil {
		return "{{< youtube " + yt[1] + " >}}"
	}
	return fmt.Sprintf(`<video src="%s" controls></video>`, url)
}

// convertSizedImage turns ![alt](path){:height H, :width W} into an <img>
// tag. Only width is applied so the browser preserves aspect ratio; height
// is the fallback when no width is given.
func convertSizedImage(m string) string {
	sm := sizedImageRe.FindStringSubmatch(m)
	alt, path, attrs := sm[1], sm[2], sm[3]

	parts := []string{fmt.Sprintf(`src="%s"`, path)}
	if alt != "" {
		parts = append(parts, fmt.Sprintf(`alt="%s"`, alt))
	}
	if w := widthAttrRe.FindStringSubmatch(attrs); w != nil {
		parts = append(parts, fmt.Sprintf(`width="%s"`, w[1]))
	} else if h := heightAttrRe.FindStringSubmatch(attrs); h != nil {
		parts = append(parts, fmt.Sprintf(`height="%s"`, h[1]))
	}
	return "<img " + strings.Join(parts, " ") + ">"
}

// spaceRawMedia forces blank lines around raw <img>/<video> lines; the
// downstream renderer needs them to treat the HTML as a block.
func spaceRawMedia(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if rawMediaRe.MatchString(line) {
			if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
				out = append(out, "")
			}
			out = append(out, line, "")
			continue
		}
		out = append(out, line)
	}
	return out
}

// collapseBlankRuns limits consecutive blank lines to max.
func collapseBlankRuns(lines []string, max int) []string {
	out := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks <= max {
				out = append(out, line)
			}
			continue
		}
		blanks = 0
		out = append(out, line)
	}
	return out
}
