package config

import (
	"fmt"
	"os"
)

const starterConfig = `# graphpress engine configuration (committed, shared).
# Personal data (hugo title, base URL, hosting) belongs in site.yaml.

languages:
  fr: fr
  en: en

sections:
  home: ""
  cv: cv
  post: blog
  blog: blog
  page: ""

# Front matter param names for the active theme (defaults target PaperMod).
theme_params:
  toc: ShowToc
  toc_open: TocOpen

assets:
  policy: lenient # lenient | strict
`

// Init writes a starter engine configuration file.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// DefaultSections returns a copy of the built-in type -> section mapping,
// used by Init and by tests.
func DefaultSections() map[string]string {
	out := make(map[string]string, len(defaultSections))
	for k, v := range defaultSections {
		out[k] = v
	}
	return out
}
