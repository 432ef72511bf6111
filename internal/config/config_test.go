package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphpress/graphpress/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_NormalizesLanguageFolders(t *testing.T) {
	path := writeConfig(t, `
languages:
  fr: fr
  zh_TW: ""
sections:
  post: blog
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "fr", cfg.LangFolder("fr"))
	require.Equal(t, "zh-tw", cfg.LangFolder("zh_TW"))
}

func TestLoad_DefaultsThemeParamsAndPolicy(t *testing.T) {
	path := writeConfig(t, `
languages:
  en: en
sections:
  post: blog
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "ShowToc", cfg.ThemeField("toc"))
	require.Equal(t, "TocOpen", cfg.ThemeField("toc_open"))
	require.Equal(t, "description", cfg.ThemeField("description"))
	require.Equal(t, AssetPolicyLenient, cfg.Assets.Policy)
	require.True(t, cfg.IsInternalKey("collapsed"))
	require.True(t, cfg.IsInternalKey("Collapsed"))
}

func TestValidate_MissingBlocks(t *testing.T) {
	cfg := &Config{}
	cfg.Normalize()

	list := cfg.Validate()
	require.Equal(t, 2, list.Len())
	for _, e := range list.All() {
		require.Equal(t, errors.KindConfigMissingSection, e.Kind)
	}
}

func TestValidate_BadLanguageCode(t *testing.T) {
	cfg := &Config{
		Languages: map[string]string{"not a lang": ""},
		Sections:  map[string]string{"post": "blog"},
	}
	cfg.Normalize()

	list := cfg.Validate()
	require.Equal(t, 1, list.Len())
	require.Equal(t, errors.KindUnknownLang, list.All()[0].Kind)
}

func TestValidate_BadAssetPolicy(t *testing.T) {
	cfg := &Config{
		Languages: map[string]string{"en": "en"},
		Sections:  map[string]string{"post": "blog"},
		Assets:    AssetsConfig{Policy: "maybe"},
	}
	cfg.Normalize()

	list := cfg.Validate()
	require.Equal(t, 1, list.Len())
}

func TestEnvOverride_AssetPolicy(t *testing.T) {
	t.Setenv("GRAPHPRESS_ASSET_POLICY", "strict")
	path := writeConfig(t, `
languages:
  en: en
sections:
  post: blog
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, AssetPolicyStrict, cfg.Assets.Policy)
}

func TestInit_RefusesOverwriteWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Init(path, false))
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate().Err())
}
