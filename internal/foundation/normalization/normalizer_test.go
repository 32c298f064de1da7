package normalization

import (
	"testing"
)

type side string

const (
	sideLeft  side = "left"
	sideRight side = "right"
)

func newSideNormalizer() *Normalizer[side] {
	return NewNormalizer(map[string]side{
		"left":  sideLeft,
		"Right": sideRight,
	}, sideLeft)
}

func TestNormalizer_Parse(t *testing.T) {
	n := newSideNormalizer()

	tests := []struct {
		name   string
		input  string
		want   side
		wantOK bool
	}{
		{"exact match", "left", sideLeft, true},
		{"case insensitive", "RIGHT", sideRight, true},
		{"with spaces", "  right  ", sideRight, true},
		{"blank uses default", "   ", sideLeft, true},
		{"unknown", "center", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.Parse(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalizer_NormalizeFallsBack(t *testing.T) {
	n := newSideNormalizer()
	if got := n.Normalize("center"); got != sideLeft {
		t.Errorf("Normalize(center) = %q, want %q", got, sideLeft)
	}
}

func TestNormalizer_ValidKeys(t *testing.T) {
	n := newSideNormalizer()
	keys := n.ValidKeys()
	if len(keys) != 2 || keys[0] != "left" || keys[1] != "right" {
		t.Fatalf("ValidKeys() = %v", keys)
	}
	keys[0] = "mutated"
	if n.ValidKeys()[0] != "left" {
		t.Error("ValidKeys must return a copy")
	}
	if n.OneOf() != "left|right" {
		t.Errorf("OneOf() = %q", n.OneOf())
	}
}
