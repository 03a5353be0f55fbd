// Author: Sachindu Nethmin
// GitHub: https://github.com/Sachindu-Nethmin
// Created: 2026-08-02
// Last Modified: 2026-08-21

// Package checklist decides whether a set of issue comments demonstrates
// a completed change-request checklist. A keyword counts only when it
// appears on a "checked" line, so incidental mentions in prose never
// contribute.
package checklist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/changeops/crsweep/internal/utils/text"
)

// Scope controls whether keyword hits must co-occur within one comment
// or may be assembled across multiple comments.
type Scope string

const (
	// ScopeAnyComment completes when the union of hits across all
	// comments covers every keyword.
	ScopeAnyComment Scope = "any-comment"

	// ScopeSameComment requires a single comment to cover every keyword
	// on its own.
	ScopeSameComment Scope = "same-comment"
)

// ParseScope validates a scope name from configuration.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeAnyComment, ScopeSameComment:
		return Scope(s), nil
	}
	return "", fmt.Errorf("unknown checklist scope: %q (expected any-comment or same-comment)", s)
}

// Matcher evaluates comments against a fixed keyword set using one
// normalization strategy selected at construction time.
type Matcher struct {
	keywords []string
	strategy text.Strategy
	scope    Scope
}

// New creates a Matcher. Keywords are matched case-insensitively and
// must be non-empty.
func New(keywords []string, strategy text.Strategy, scope Scope) (*Matcher, error) {
	if len(keywords) == 0 {
		return nil, fmt.Errorf("checklist keywords cannot be empty")
	}
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			return nil, fmt.Errorf("checklist keyword %d is empty", i)
		}
		lowered[i] = k
	}
	return &Matcher{keywords: lowered, strategy: strategy, scope: scope}, nil
}

// Complete reports whether the comments demonstrate every keyword
// checked off, along with the sorted union of keywords found. Under
// ScopeSameComment completeness is judged per comment, but the returned
// hits still cover all comments for observability.
func (m *Matcher) Complete(comments []string) (bool, []string) {
	if m.strategy == text.StrategyExact {
		return m.completeExact(comments)
	}

	union := make(map[string]bool)
	complete := false

	for _, body := range comments {
		hits := m.scanComment(body)
		for k := range hits {
			union[k] = true
		}
		if m.scope == ScopeSameComment && len(hits) == len(m.keywords) {
			complete = true
		}
	}

	if m.scope == ScopeAnyComment {
		complete = len(union) == len(m.keywords)
	}

	return complete, sortedKeys(union)
}

// scanComment collects keyword hits from the checked lines of one
// comment body.
func (m *Matcher) scanComment(body string) map[string]bool {
	hits := make(map[string]bool)
	for _, line := range strings.Split(body, "\n") {
		rest, ok := checkedRest(m.strategy, line)
		if !ok {
			continue
		}
		normalized := text.Normalize(m.strategy, rest)
		for _, k := range m.keywords {
			if strings.Contains(normalized, k) {
				hits[k] = true
			}
		}
	}
	return hits
}

// completeExact requires the five literal checkmarked keyword strings
// (e.g. "✓ Assessed") to appear within a single comment body.
func (m *Matcher) completeExact(comments []string) (bool, []string) {
	union := make(map[string]bool)
	complete := false

	for _, body := range comments {
		found := 0
		for _, k := range m.keywords {
			if strings.Contains(body, "✓ "+titleCase(k)) {
				union[k] = true
				found++
			}
		}
		if found == len(m.keywords) {
			complete = true
		}
	}

	return complete, sortedKeys(union)
}

// checkedRest reports whether the line is "checked" and returns the
// remainder after the marker. A line is checked when, after trimming
// surrounding whitespace and Markdown emphasis, it starts with a
// checkmark glyph or a checked task-list marker.
func checkedRest(strategy text.Strategy, line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if strategy == text.StrategyUnicodeFold {
		trimmed = text.Fold(trimmed)
	}
	trimmed = strings.TrimLeft(trimmed, "*_~`> \t")

	for _, glyph := range []string{"✓", "✔"} {
		if idx := strings.Index(trimmed, glyph); idx == 0 {
			return trimmed[len(glyph):], true
		}
	}

	lower := strings.ToLower(trimmed)
	for _, marker := range []string{"- [x]", "[x]"} {
		if strings.HasPrefix(lower, marker) {
			return trimmed[len(marker):], true
		}
	}

	return "", false
}

func titleCase(k string) string {
	if k == "" {
		return k
	}
	return strings.ToUpper(k[:1]) + k[1:]
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
