// Package markdown provides Goldmark-based analysis of note bodies. It is
// an analysis API only; bodies are never re-rendered from the AST.
package markdown

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

type LinkKind string

const (
	LinkKindInline LinkKind = "inline"
	LinkKindImage  LinkKind = "image"
	LinkKindAuto   LinkKind = "auto"
	LinkKindHTML   LinkKind = "html"
)

// Link is a link-like construct found in a body.
type Link struct {
	Kind        LinkKind
	Destination string
}

// Raw HTML img/video sources. Goldmark keeps raw HTML opaque, and converted
// bodies legitimately contain <img>/<video> tags (sized images, video
// embeds), so a permissive pass catches their src attributes.
var htmlSrc = regexp.MustCompile(`<(?:img|video)\s[^>]*src="([^"]+)"`)

// ExtractLinks parses a Markdown body and returns every link, image, and
// raw HTML media reference with its destination.
func ExtractLinks(body []byte) []Link {
	md := goldmark.New()
	ctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *gmast.Link:
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})

	for _, m := range htmlSrc.FindAllStringSubmatch(string(body), -1) {
		links = append(links, Link{Kind: LinkKindHTML, Destination: m[1]})
	}

	return links
}

// IsRemote reports whether a destination points outside the local tree
// (scheme URLs, protocol-relative, anchors).
func IsRemote(dest string) bool {
	if dest == "" || strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "//") {
		return true
	}
	if i := strings.Index(dest, "://"); i >= 0 {
		return true
	}
	return strings.HasPrefix(dest, "mailto:") || strings.HasPrefix(dest, "tel:")
}
