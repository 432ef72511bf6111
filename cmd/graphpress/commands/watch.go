package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/graphpress/graphpress/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Graph  string `short:"g" help:"Graph directory (contains pages/ and assets/)" default:"."`
	Output string `short:"o" help:"Output directory for the generated site" default:"./site"`
	Site   string `help:"Site configuration file (defaults to <graph>/site.yaml when present)"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	watcher := watch.New(w.Graph, func(ctx context.Context) error {
		// A fresh engine per rebuild picks up config edits and a current
		// run date for date defaulting.
		engine, err := newEngine(root, w.Graph, w.Output, w.Site)
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
		return engine.Apply(plan, false)
	})

	err := watcher.Run(ctx)
	slog.Info("Watch stopped")
	return err
}
