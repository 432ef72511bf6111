// Package sitefiles generates the site collaterals derived from
// configuration: the builder's main config file, the language switcher data
// file, and the theme color stylesheet. Generation is pure; writing is the
// caller's phase-2 concern.
package sitefiles

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/graphpress/graphpress/internal/config"
)

const generatedHeader = "# Auto-generated by graphpress from site configuration; do not edit.\n"

// HugoYAML renders the builder's main configuration from the site config
// hugo block. The base URL is derived from hosting.site_url. Returns
// ok=false when the site config carries no hugo block, in which case any
// existing file must be left untouched.
func HugoYAML(site *config.SiteConfig) ([]byte, bool, error) {
	if site == nil || len(site.Hugo) == 0 {
		return nil, false, nil
	}

	block := make(map[string]any, len(site.Hugo)+1)
	for k, v := range site.Hugo {
		block[k] = v
	}
	if url := strings.TrimSpace(site.Hosting.SiteURL); url != "" {
		block["baseURL"] = strings.TrimRight(url, "/") + "/"
	}

	body, err := marshalSorted(block)
	if err != nil {
		return nil, false, fmt.Errorf("render hugo config: %w", err)
	}
	return append([]byte(generatedHeader), body...), true, nil
}

// LanguagesYAML renders the language switcher data file from the site
// config languages block. The special "display" key controls the switcher
// format and defaults to flag_name.
func LanguagesYAML(site *config.SiteConfig) ([]byte, bool, error) {
	if site == nil || len(site.Languages) == 0 {
		return nil, false, nil
	}

	out := make(map[string]any, len(site.Languages)+1)
	for k, v := range site.Languages {
		out[k] = v
	}
	if _, ok := out["display"]; !ok {
		out["display"] = "flag_name"
	}

	body, err := marshalSorted(out)
	if err != nil {
		return nil, false, fmt.Errorf("render languages data: %w", err)
	}
	return append([]byte(generatedHeader), body...), true, nil
}

// ThemeColorsCSS renders the theme color stylesheet from the engine config
// colors and color_vars blocks. With either block absent an empty
// placeholder is produced so the theme's stylesheet link never 404s.
func ThemeColorsCSS(cfg *config.Config) []byte {
	if len(cfg.Colors) == 0 || len(cfg.ColorVars) == 0 {
		return []byte("/* theme-colors.css: no colors configured */\n")
	}

	semantic := make([]string, 0, len(cfg.ColorVars))
	for name := range cfg.ColorVars {
		semantic = append(semantic, name)
	}
	sort.Strings(semantic)

	var buf bytes.Buffer
	buf.WriteString("/* Auto-generated by graphpress from engine configuration; do not edit. */\n\n")
	for _, mode := range []struct{ name, selector string }{
		{"light", ":root"},
		{"dark", ".dark"},
	} {
		values, ok := cfg.Colors[mode.name]
		if !ok || len(values) == 0 {
			continue
		}
		buf.WriteString(mode.selector + " {\n")
		for _, name := range semantic {
			if value, ok := values[name]; ok && value != "" {
				fmt.Fprintf(&buf, "    %s: %s;\n", cfg.ColorVars[name], value)
			}
		}
		buf.WriteString("}\n\n")
	}
	return buf.Bytes()
}

func marshalSorted(m map[string]any) ([]byte, error) {
	// yaml.v3 sorts map keys on its own for map[string]any; an explicit
	// Marshal keeps that behavior pinned in one place.
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
