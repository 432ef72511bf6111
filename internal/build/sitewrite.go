package build

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/graphpress/graphpress/internal/sitefiles"
)

// siteRoot is the directory holding the generated site scaffolding: the
// content root's parent, where the static site builder expects its config,
// data files, and static assets.
func (e *Engine) siteRoot() string { return filepath.Dir(e.contentDir) }

func (e *Engine) staticAssetsDir() string {
	return filepath.Join(e.siteRoot(), "static", "assets")
}

// writeSiteFiles regenerates the config-derived collaterals. Each file is
// only rewritten when its content changed; an absent site config block
// leaves the corresponding file untouched.
func (e *Engine) writeSiteFiles() error {
	hugo, ok, err := sitefiles.HugoYAML(e.site)
	if err != nil {
		return err
	}
	if ok {
		if err := writeIfChanged(filepath.Join(e.siteRoot(), "hugo.yaml"), hugo); err != nil {
			return err
		}
	}

	langs, ok, err := sitefiles.LanguagesYAML(e.site)
	if err != nil {
		return err
	}
	if ok {
		if err := writeIfChanged(filepath.Join(e.siteRoot(), "data", "languages.yaml"), langs); err != nil {
			return err
		}
	}

	css := sitefiles.ThemeColorsCSS(e.cfg)
	return writeIfChanged(filepath.Join(e.siteRoot(), "static", "css", "theme-colors.css"), css)
}

func writeIfChanged(path string, content []byte) error {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, content) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
