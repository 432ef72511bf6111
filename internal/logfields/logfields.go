package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID  = "build_id"
	KeyStage    = "stage"
	KeyPage     = "page"
	KeyLang     = "lang"
	KeyType     = "type"
	KeySlug     = "slug"
	KeySection  = "section"
	KeyPath     = "path"
	KeyAsset    = "asset"
	KeyCount    = "count"
	KeyDuration = "duration_ms"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Page(id string) slog.Attr        { return slog.String(KeyPage, id) }
func Lang(l string) slog.Attr         { return slog.String(KeyLang, l) }
func Type(t string) slog.Attr         { return slog.String(KeyType, t) }
func Slug(s string) slog.Attr         { return slog.String(KeySlug, s) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Asset(a string) slog.Attr        { return slog.String(KeyAsset, a) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDuration, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
