package commands

import (
	"log/slog"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Graph  string `short:"g" help:"Graph directory (contains pages/ and assets/)" default:"."`
	Output string `short:"o" help:"Output directory for the generated site" default:"./site"`
	Site   string `help:"Site configuration file (defaults to <graph>/site.yaml when present)"`
	Clean  bool   `help:"Remove the content tree before writing"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	engine, err := newEngine(root, b.Graph, b.Output, b.Site)
	if err != nil {
		return err
	}

	plan, err := engine.Plan()
	if err != nil {
		return err
	}
	if !plan.OK() {
		return reportPlanErrors(plan)
	}
	if err := engine.Apply(plan, b.Clean); err != nil {
		return err
	}

	slog.Info("Site published",
		slog.Int("pages", len(plan.Pages)),
		slog.Int("skipped", plan.Skipped),
		slog.String("output", b.Output))
	return nil
}
