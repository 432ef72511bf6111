package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/graphpress/graphpress/internal/errors"
)

// Default front matter param names (PaperMod). Overridden by theme_params.
var defaultThemeParams = map[string]string{
	"toc":      "ShowToc",
	"toc_open": "TocOpen",
}

// Note-tool bookkeeping keys stripped from bodies by default.
var defaultInternalKeys = []string{
	"collapsed", "id", "background-color", "heading",
	"card-last-reviewed", "card-next-schedule",
	"card-last-score", "card-ease-factor", "card-repeats",
	"card-last-interval", "logseq.order-list-type",
}

// Default type -> section mapping used by Init and when a config file
// omits the sections block entirely is NOT applied at load time: an absent
// sections block is a validation error, since the type domain must be an
// explicit closed set.
var defaultSections = map[string]string{
	"home":    "",
	"cv":      "cv",
	"post":    "blog",
	"blog":    "blog",
	"curious": "curious",
	"contact": "contact",
	"page":    "",
}

// Load reads and normalizes the engine configuration. Environment overrides
// (GRAPHPRESS_ASSET_POLICY) are applied after .env/.env.local loading; a
// missing env file is not an error.
func Load(path string) (*Config, error) {
	loadEnv()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	cfg.Normalize()
	return &cfg, nil
}

// LoadSite reads the personal site configuration. It never participates in
// validation; a broken site config only degrades the generated site files.
func LoadSite(path string) (*SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site config: %w", err)
	}
	var site SiteConfig
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parse site config %s: %w", path, err)
	}
	return &site, nil
}

func loadEnv() {
	for _, p := range []string{".env", ".env.local"} {
		if err := godotenv.Load(p); err == nil {
			slog.Debug("Loaded environment variables", "file", p)
		}
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GRAPHPRESS_ASSET_POLICY"); v != "" {
		c.Assets.Policy = AssetPolicy(strings.ToLower(v))
	}
}

// Normalize fills defaults and precomputes lookup sets. Safe to call on a
// zero Config (used by tests constructing configs inline).
func (c *Config) Normalize() {
	if c.ThemeParams == nil {
		c.ThemeParams = map[string]string{}
	}
	for k, v := range defaultThemeParams {
		if _, ok := c.ThemeParams[k]; !ok {
			c.ThemeParams[k] = v
		}
	}
	if len(c.InternalKeys) == 0 {
		c.InternalKeys = append([]string(nil), defaultInternalKeys...)
	}
	c.internalKeySet = make(map[string]struct{}, len(c.InternalKeys))
	for _, k := range c.InternalKeys {
		c.internalKeySet[strings.ToLower(k)] = struct{}{}
	}
	if c.Assets.Policy == "" {
		c.Assets.Policy = AssetPolicyLenient
	}
	c.langFolders = make(map[string]string, len(c.Languages))
	for code, folder := range c.Languages {
		if folder == "" {
			folder = normalizeLangFolder(code)
		}
		c.langFolders[code] = folder
	}
}

// normalizeLangFolder derives a Hugo language folder name from a code,
// preferring BCP 47 canonicalization (zh_TW -> zh-tw).
func normalizeLangFolder(code string) string {
	if tag, err := language.Parse(code); err == nil {
		return strings.ToLower(tag.String())
	}
	return strings.ToLower(strings.ReplaceAll(code, "_", "-"))
}

// Validate checks the closed domains the engine depends on. All problems are
// accumulated so the author fixes the config in one pass.
func (c *Config) Validate() *errors.List {
	var list errors.List
	if len(c.Languages) == 0 {
		list.Add(errors.New(errors.KindConfigMissingSection, errors.CategoryConfig, "",
			"config defines no languages block"))
	}
	if len(c.Sections) == 0 {
		list.Add(errors.New(errors.KindConfigMissingSection, errors.CategoryConfig, "",
			"config defines no sections block"))
	}
	for code := range c.Languages {
		if _, err := language.Parse(code); err != nil {
			list.Add(errors.New(errors.KindUnknownLang, errors.CategoryConfig, "",
				fmt.Sprintf("configured language %q is not a valid language code", code)))
		}
	}
	switch c.Assets.Policy {
	case AssetPolicyLenient, AssetPolicyStrict:
	default:
		list.Add(errors.New(errors.KindConfigMissingSection, errors.CategoryConfig, "",
			fmt.Sprintf("assets.policy must be lenient or strict, got %q", c.Assets.Policy)))
	}
	return &list
}
