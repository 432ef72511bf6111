package config

import "strings"

// AssetPolicy controls how a missing referenced asset is treated.
// Lenient logs a warning and leaves the reference unrewritten; strict turns
// it into a validation error that blocks the whole run.
type AssetPolicy string

const (
	AssetPolicyLenient AssetPolicy = "lenient"
	AssetPolicyStrict  AssetPolicy = "strict"
)

// AssetsConfig holds asset handling knobs.
type AssetsConfig struct {
	Policy AssetPolicy `yaml:"policy,omitempty"`
}

// Config is the engine configuration: the closed language and type domains,
// the theme field renaming table, and body conversion knobs. It is committed
// and shared; personal data lives in SiteConfig.
type Config struct {
	// Languages maps each valid language code to its output folder name.
	// An empty folder name is derived from the code (zh_TW -> zh-tw).
	Languages map[string]string `yaml:"languages"`

	// Sections maps each valid page type to its output path segment.
	// An empty segment places the type at the language root.
	Sections map[string]string `yaml:"sections"`

	// ThemeParams renames engine front matter fields to the names the active
	// theme expects (e.g. toc -> ShowToc for PaperMod). Unmapped fields keep
	// their engine name.
	ThemeParams map[string]string `yaml:"theme_params,omitempty"`

	// InternalKeys are note-tool bookkeeping properties stripped from bodies
	// (collapsed, id, card scheduling keys, ...). Matched case-insensitively.
	InternalKeys []string `yaml:"internal_keys,omitempty"`

	Assets AssetsConfig `yaml:"assets,omitempty"`

	// Colors and ColorVars drive the generated theme-colors.css.
	// Colors: mode (light|dark) -> semantic name -> value.
	// ColorVars: semantic name -> CSS variable name for the active theme.
	Colors    map[string]map[string]string `yaml:"colors,omitempty"`
	ColorVars map[string]string            `yaml:"color_vars,omitempty"`

	internalKeySet map[string]struct{}
	langFolders    map[string]string
}

// HostingConfig carries deployment-only metadata. The engine only reads
// SiteURL (to derive the generated hugo.yaml baseURL).
type HostingConfig struct {
	SiteURL string `yaml:"site_url,omitempty"`
}

// SiteConfig is the personal site configuration (private, lives in the
// graph). None of it participates in page validation or routing.
type SiteConfig struct {
	// Languages is the display block for the generated data/languages.yaml
	// (per-language flag/name entries plus the special "display" key).
	Languages map[string]any `yaml:"languages,omitempty"`

	// Hugo is the raw hugo.yaml block (title, theme, params, ...).
	Hugo map[string]any `yaml:"hugo,omitempty"`

	Hosting HostingConfig `yaml:"hosting,omitempty"`
}

// HasLang reports whether code belongs to the configured language domain.
func (c *Config) HasLang(code string) bool {
	_, ok := c.Languages[code]
	return ok
}

// HasType reports whether typ belongs to the configured type domain.
func (c *Config) HasType(typ string) bool {
	_, ok := c.Sections[typ]
	return ok
}

// LangFolder returns the output folder name for a configured language code.
// Folder names are finalized by Normalize.
func (c *Config) LangFolder(code string) string {
	if f, ok := c.langFolders[code]; ok {
		return f
	}
	return strings.ToLower(strings.ReplaceAll(code, "_", "-"))
}

// Section returns the output path segment for a configured type.
func (c *Config) Section(typ string) (string, bool) {
	s, ok := c.Sections[typ]
	return s, ok
}

// IsInternalKey reports whether a property key is note-tool bookkeeping to
// strip from bodies.
func (c *Config) IsInternalKey(key string) bool {
	_, ok := c.internalKeySet[strings.ToLower(key)]
	return ok
}

// ThemeField maps an engine front matter field name through ThemeParams.
func (c *Config) ThemeField(name string) string {
	if mapped, ok := c.ThemeParams[name]; ok && mapped != "" {
		return mapped
	}
	return name
}
