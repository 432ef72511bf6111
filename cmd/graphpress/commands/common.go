package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/graphpress/graphpress/internal/build"
	"github.com/graphpress/graphpress/internal/config"
	"github.com/graphpress/graphpress/internal/logfields"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Engine configuration file path" default:"graphpress.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Publish the graph as a static site content tree"`
	Watch WatchCmd `cmd:"" help:"Rebuild continuously while the graph changes"`
	Init  InitCmd  `cmd:"" help:"Initialize a new engine configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

// logLevel resolves the log level from the --verbose flag and the
// GRAPHPRESS_LOG_LEVEL environment variable (flag wins when both are set).
func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(os.Getenv("GRAPHPRESS_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newEngine loads configuration and wires a build engine for one run.
// The site config is optional: an explicit --site path must load, while the
// conventional <graph>/site.yaml is picked up only when present.
func newEngine(root *CLI, graph, output, sitePath string) (*build.Engine, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var siteCfg *config.SiteConfig
	switch {
	case sitePath != "":
		siteCfg, err = config.LoadSite(sitePath)
		if err != nil {
			return nil, err
		}
	default:
		conventional := filepath.Join(graph, "site.yaml")
		if _, statErr := os.Stat(conventional); statErr == nil {
			siteCfg, err = config.LoadSite(conventional)
			if err != nil {
				return nil, err
			}
		}
	}

	contentDir := filepath.Join(output, "content")
	return build.New(cfg, siteCfg, graph, contentDir, time.Now()), nil
}

// reportPlanErrors logs every accumulated fault so the author fixes the
// graph in one pass.
func reportPlanErrors(plan *build.Plan) error {
	for _, e := range plan.Errors.All() {
		slog.Error("Validation failed",
			slog.String("kind", string(e.Kind)),
			logfields.Page(e.Page),
			slog.String("detail", e.Error()))
	}
	return fmt.Errorf("build failed with %d validation error(s)", plan.Errors.Len())
}
