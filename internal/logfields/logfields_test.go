package logfields

import (
	"fmt"
	"log/slog"
	"testing"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Component", KeyComponent, "PresetResolver", Component("PresetResolver")},
		{"Field", KeyField, "presets.docs", Field("presets.docs")},
		{"Variant", KeyVariant, "preview", Variant("preview")},
		{"Preset", KeyPreset, "classic", Preset("classic")},
		{"Path", KeyPath, "/tmp/docsite.yaml", Path("/tmp/docsite.yaml")},
		{"Output", KeyOutput, "site.json", Output("site.json")},
		{"Format", KeyFormat, "yaml", Format("yaml")},
		{"Event", KeyEvent, "WRITE", Event("WRITE")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestDurationHelper(t *testing.T) {
	if v := DurationMS(12.5); v.Key != KeyDurationMS || v.Value.Float64() != 12.5 {
		t.Fatalf("DurationMS mismatch: %v", v)
	}
}

// TestErrorHelper ensures Error() handles nil and non-nil errors predictably.
func TestErrorHelper(t *testing.T) {
	attr := Error(nil)
	if attr.Key != KeyError {
		t.Fatalf("Error key mismatch: %s", attr.Key)
	}
	if attr.Value.String() != "" {
		t.Fatalf("Expected empty error string, got %s", attr.Value.String())
	}
	attr = Error(errTest{})
	if attr.Value.String() != "err-test" {
		t.Fatalf("Expected 'err-test', got %s", attr.Value.String())
	}
}

func TestConfigErrorHelper(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", errors.NewConfigError("ThemeConfigComposer", "navbar.items[C]", "missing target"))
	attrs := ConfigError(wrapped)
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attrs, got %d", len(attrs))
	}
	if a := attrs[1].(slog.Attr); a.Value.String() != "navbar.items[C]" {
		t.Fatalf("unexpected field attr %v", a)
	}

	attrs = ConfigError(errTest{})
	if len(attrs) != 1 || attrs[0].(slog.Attr).Key != KeyError {
		t.Fatalf("expected single error attr, got %v", attrs)
	}
}

type errTest struct{}

func (e errTest) Error() string { return "err-test" }
