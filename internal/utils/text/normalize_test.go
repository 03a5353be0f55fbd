// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-07-28
// Last Modified: 2026-08-19

package text

import "testing"

func TestParseStrategy(t *testing.T) {
	for _, valid := range []string{"exact", "line-marker", "unicode-fold"} {
		if _, err := ParseStrategy(valid); err != nil {
			t.Errorf("ParseStrategy(%q) returned error: %v", valid, err)
		}
	}

	if _, err := ParseStrategy("fuzzy"); err == nil {
		t.Error("Expected error for unknown strategy 'fuzzy'")
	}
	if _, err := ParseStrategy(""); err == nil {
		t.Error("Expected error for empty strategy")
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii", "Assessed", "Assessed"},
		{"accented", "revéiewed", "reveiewed"},
		{"variation selector stripped", "✔️ Done", "✔ Done"},
		{"checkmark survives", "✓ Scheduled", "✓ Scheduled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.in); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCollapseNonWord(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold markup", "**✓ Assessed**", "✓ assessed"},
		{"punctuation runs", "- [x]  Reviewed!!", "x reviewed"},
		{"already clean", "✔ implemented", "✔ implemented"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollapseNonWord(tt.in); got != tt.want {
				t.Errorf("CollapseNonWord(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeStrategies(t *testing.T) {
	line := "**✔️ Assessed**"

	if got := Normalize(StrategyExact, line); got != line {
		t.Errorf("exact strategy must not modify input, got %q", got)
	}

	// line-marker keeps the variation selector (it is not a word rune,
	// so it collapses away with the markup anyway).
	if got := Normalize(StrategyLineMarker, line); got != "✔ assessed" {
		t.Errorf("line-marker = %q, want %q", got, "✔ assessed")
	}

	if got := Normalize(StrategyUnicodeFold, line); got != "✔ assessed" {
		t.Errorf("unicode-fold = %q, want %q", got, "✔ assessed")
	}
}
