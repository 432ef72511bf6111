// Package route maps a page's (type, lang) to its output path and URL using
// the configured section mapping. Resolution is deterministic and
// order-independent: the same page always lands on the same path.
package route

import (
	"fmt"
	"path"

	"github.com/graphpress/graphpress/internal/config"
	"github.com/graphpress/graphpress/internal/errors"
	"github.com/graphpress/graphpress/internal/page"
)

// Route is a resolved output location.
type Route struct {
	// Path is the content file path relative to the output content root,
	// always slash-separated (callers convert for the local filesystem).
	Path string

	// URL is the site-absolute URL of the page, with a trailing slash.
	URL string
}

// Resolver resolves pages against the configured section mapping.
type Resolver struct {
	cfg *config.Config
}

func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve computes the output path and URL for a public page. Articles get
// one file per slug; every other type is a section index file.
func (r *Resolver) Resolve(p *page.Page) (Route, *errors.EngineError) {
	section, ok := r.cfg.Section(p.Type)
	if !ok {
		return Route{}, errors.New(errors.KindUnmappedType, errors.CategoryRoute, p.ID,
			fmt.Sprintf("type %q has no section mapping", p.Type)).
			WithContext("type", p.Type)
	}

	langFolder := r.cfg.LangFolder(p.Lang)

	dir := langFolder
	if section != "" {
		dir = path.Join(langFolder, section)
	}

	var file string
	var url string
	if p.IsArticle() {
		file = p.Slug + ".md"
		url = "/" + path.Join(dir, p.Slug) + "/"
	} else {
		file = "_index.md"
		url = "/" + dir + "/"
	}

	return Route{Path: path.Join(dir, file), URL: url}, nil
}
