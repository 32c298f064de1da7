package logfields

import (
	"log/slog"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyComponent  = "component"
	KeyField      = "field"
	KeyReason     = "reason"
	KeyVariant    = "variant"
	KeyPreset     = "preset"
	KeyPath       = "path"
	KeyOutput     = "output"
	KeyFormat     = "format"
	KeyEvent      = "event"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Component(c string) slog.Attr    { return slog.String(KeyComponent, c) }
func Field(f string) slog.Attr        { return slog.String(KeyField, f) }
func Variant(v string) slog.Attr      { return slog.String(KeyVariant, v) }
func Preset(p string) slog.Attr       { return slog.String(KeyPreset, p) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Output(p string) slog.Attr       { return slog.String(KeyOutput, p) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Event(e string) slog.Attr        { return slog.String(KeyEvent, e) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// ConfigError expands a configuration error into component, field and reason
// attributes. Other errors yield a single error attribute.
func ConfigError(err error) []any {
	cfgErr, ok := errors.AsConfigError(err)
	if !ok {
		return []any{Error(err)}
	}
	return []any{
		Component(cfgErr.Component),
		Field(cfgErr.Field),
		slog.String(KeyReason, cfgErr.Reason),
	}
}
