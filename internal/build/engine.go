// Package build orchestrates the two-phase run: Plan discovers and
// validates every page and computes the full desired output set without
// touching the output tree; Apply performs the filesystem changes only when
// planning finished without a single validation error.
package build

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/graphpress/graphpress/internal/assets"
	"github.com/graphpress/graphpress/internal/config"
	"github.com/graphpress/graphpress/internal/content"
	"github.com/graphpress/graphpress/internal/errors"
	"github.com/graphpress/graphpress/internal/frontmatter"
	"github.com/graphpress/graphpress/internal/logfields"
	"github.com/graphpress/graphpress/internal/page"
	"github.com/graphpress/graphpress/internal/props"
	"github.com/graphpress/graphpress/internal/route"
	"github.com/graphpress/graphpress/internal/site"
	"github.com/graphpress/graphpress/internal/sync"
)

// Engine runs full regenerations of one site from one graph.
type Engine struct {
	cfg      *config.Config
	site     *config.SiteConfig // nil when no site config was supplied
	graphDir string
	// contentDir is the output content root; generated collaterals (assets,
	// hugo.yaml, data files) land in its parent.
	contentDir string
	now        time.Time
}

func New(cfg *config.Config, siteCfg *config.SiteConfig, graphDir, contentDir string, now time.Time) *Engine {
	return &Engine{cfg: cfg, site: siteCfg, graphDir: graphDir, contentDir: contentDir, now: now}
}

// PlannedPage is one public page with its resolved route and rendered
// output document.
type PlannedPage struct {
	Page   *page.Page
	Route  route.Route
	Output []byte
}

// Plan is the computed result of phase 1.
type Plan struct {
	BuildID string
	Pages   []*PlannedPage
	Files   []sync.File
	Copies  []assets.Copy
	Skipped int // private notes, not an error
	Errors  *errors.List
}

// OK reports whether the plan is free of validation errors and may be
// applied.
func (p *Plan) OK() bool { return p.Errors.Len() == 0 }

// Plan executes phase 1. Validation errors are accumulated in the returned
// plan, never short-circuited, so one run reports every problem; the
// returned error is reserved for source I/O failures.
func (e *Engine) Plan() (*Plan, error) {
	plan := &Plan{BuildID: uuid.NewString(), Errors: &errors.List{}}
	plan.Errors.Merge(e.cfg.Validate())

	notes, err := discoverNotes(e.graphDir)
	if err != nil {
		return nil, err
	}

	builder := page.NewBuilder(e.cfg, e.now)
	registry := site.NewSlugRegistry()
	linker := site.NewTranslationLinker()

	var pages []*page.Page
	for _, note := range notes {
		block := props.Parse(note.Raw)
		p, errs := builder.Build(note.ID, block.Props, block.Body)
		plan.Errors.Merge(errs)
		if errs.Len() > 0 {
			continue
		}
		if !p.Public {
			plan.Skipped++
			continue
		}
		plan.Errors.Add(registry.Register(p.Lang, p.Type, p.Slug, p.ID))
		plan.Errors.Add(linker.Register(p))
		pages = append(pages, p)
	}

	// Routes for every page first: translation links need the sibling URLs.
	resolver := route.NewResolver(e.cfg)
	routes := make(map[string]route.Route, len(pages))
	for _, p := range pages {
		rt, rerr := resolver.Resolve(p)
		if rerr != nil {
			plan.Errors.Add(rerr)
			continue
		}
		routes[p.ID] = rt
	}

	converter := content.NewConverter(e.cfg)
	assetResolver := assets.NewResolver(e.graphDir, e.cfg.Assets.Policy)
	emitter := frontmatter.NewEmitter(e.cfg)

	for _, p := range pages {
		rt, ok := routes[p.ID]
		if !ok {
			continue
		}

		p.Tags = content.ExtractTags(p.Body)
		body := converter.Convert(p.Body, p.Lang)

		body, copies, aerrs := assetResolver.Resolve(p.ID, body)
		plan.Errors.Merge(aerrs)
		plan.Copies = append(plan.Copies, copies...)

		var links []frontmatter.TranslationLink
		for _, sibling := range linker.Siblings(p) {
			if srt, ok := routes[sibling.ID]; ok {
				links = append(links, frontmatter.TranslationLink{Lang: sibling.Lang, URL: srt.URL})
			}
		}

		fm, err := emitter.Emit(p, rt.URL, links)
		if err != nil {
			return nil, err
		}

		doc := append(fm, '\n')
		doc = append(doc, []byte(body)...)
		doc = append(doc, '\n')

		plan.Pages = append(plan.Pages, &PlannedPage{Page: p, Route: rt, Output: doc})
		plan.Files = append(plan.Files, sync.File{Path: rt.Path, Content: doc})
	}

	slog.Info("Planning completed",
		logfields.BuildID(plan.BuildID),
		logfields.Count(len(plan.Pages)),
		slog.Int("skipped", plan.Skipped),
		slog.Int("errors", plan.Errors.Len()))

	return plan, nil
}

// Apply executes phase 2 for an error-free plan: clean (when requested),
// asset copies, generated site files, and the content tree sync. Refuses a
// plan that carries validation errors so a failed run never partially
// overwrites good output.
func (e *Engine) Apply(plan *Plan, clean bool) error {
	if !plan.OK() {
		return fmt.Errorf("refusing to apply plan with %d validation error(s)", plan.Errors.Len())
	}

	start := time.Now()
	if clean {
		if err := sync.Clean(e.contentDir); err != nil {
			return err
		}
	}

	if err := assets.Apply(plan.Copies, e.staticAssetsDir()); err != nil {
		return err
	}
	if err := e.writeSiteFiles(); err != nil {
		return err
	}

	stats, err := sync.Sync(e.contentDir, plan.Files)
	if err != nil {
		return err
	}

	if err := e.writeManifest(plan); err != nil {
		// The manifest is diagnostic only; never fail a finished build on it.
		slog.Warn("Failed to write build manifest", logfields.Error(err))
	}

	slog.Info("Build applied",
		logfields.BuildID(plan.BuildID),
		slog.Int("written", stats.Written),
		slog.Int("kept", stats.Kept),
		slog.Int("deleted", stats.Deleted),
		slog.Int("assets", len(plan.Copies)),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))

	return nil
}

// Run is Plan followed by Apply. A plan with validation errors is returned
// to the caller for reporting without touching the output tree.
func (e *Engine) Run(clean bool) (*Plan, error) {
	plan, err := e.Plan()
	if err != nil {
		return nil, err
	}
	if !plan.OK() {
		return plan, plan.Errors.Err()
	}
	if err := e.Apply(plan, clean); err != nil {
		return plan, err
	}
	return plan, nil
}
