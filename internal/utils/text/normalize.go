// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-07-28
// Last Modified: 2026-08-19

// Package text provides the normalization strategies used when matching
// checklist lines and project field values. Checklist authors are
// inconsistent about Markdown styling (bold wrappers, task-list syntax,
// checkmark glyphs with and without emoji variation selectors), so the
// matchers run over normalized text instead of raw comment bodies.
package text

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Strategy selects how comment text is normalized before matching.
type Strategy string

const (
	// StrategyExact performs no normalization; literal substrings only.
	StrategyExact Strategy = "exact"

	// StrategyLineMarker matches checked lines after lowercasing and
	// punctuation stripping.
	StrategyLineMarker Strategy = "line-marker"

	// StrategyUnicodeFold is StrategyLineMarker with Unicode
	// decomposition applied first, so stylized or accented characters
	// and emoji variation selectors do not break matching.
	StrategyUnicodeFold Strategy = "unicode-fold"
)

// ParseStrategy validates a strategy name from configuration.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyExact, StrategyLineMarker, StrategyUnicodeFold:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown normalization strategy: %q (expected exact, line-marker, or unicode-fold)", s)
}

// foldTransformer decomposes to NFKD and drops combining marks and
// variation selectors. Checkmark glyphs (U+2713, U+2714) survive; an
// emoji-styled checkmark like "✔️" loses its U+FE0F selector and
// becomes plain "✔".
var foldTransformer = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.In(unicode.Variation_Selector)),
)

// Fold reduces accented and stylized characters to their base ASCII
// form and strips emoji variation selectors. The input is returned
// unchanged if the transform fails.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}

// CollapseNonWord replaces every rune that is not a letter, digit, or
// checkmark glyph with a space and collapses runs of spaces. The result
// is lowercased.
func CollapseNonWord(s string) string {
	var sb strings.Builder
	lastSpace := false
	for _, r := range s {
		keep := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '✓' || r == '✔'
		if keep {
			sb.WriteRune(unicode.ToLower(r))
			lastSpace = false
			continue
		}
		if !lastSpace && sb.Len() > 0 {
			sb.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(sb.String())
}

// Normalize applies the strategy to a single line of text. For
// StrategyExact the line is returned untouched.
func Normalize(strategy Strategy, line string) string {
	switch strategy {
	case StrategyExact:
		return line
	case StrategyUnicodeFold:
		return CollapseNonWord(Fold(line))
	default:
		return CollapseNonWord(line)
	}
}
