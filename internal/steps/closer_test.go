// Author: Sachindu Nethmin
// GitHub: https://github.com/Sachindu-Nethmin
// Created: 2026-08-08
// Last Modified: 2026-08-24

package steps

import (
	"context"
	"reflect"
	"testing"

	"github.com/changeops/crsweep/internal/core/config"
	"github.com/changeops/crsweep/internal/core/pipeline"
)

func TestLabelDelta(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     []string
		expected []string
	}{
		{
			name:     "both missing",
			existing: []string{"Normal Change Request", "Application"},
			want:     []string{"done", "Resolution/Done"},
			expected: []string{"done", "Resolution/Done"},
		},
		{
			name:     "one already present",
			existing: []string{"Normal Change Request", "done"},
			want:     []string{"done", "Resolution/Done"},
			expected: []string{"Resolution/Done"},
		},
		{
			name:     "all present is empty delta",
			existing: []string{"done", "Resolution/Done"},
			want:     []string{"done", "Resolution/Done"},
			expected: nil,
		},
		{
			name:     "duplicates in want collapse",
			existing: nil,
			want:     []string{"done", "done"},
			expected: []string{"done"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := labelDelta(tt.existing, tt.want)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("labelDelta(%v, %v) = %v, want %v",
					tt.existing, tt.want, got, tt.expected)
			}
		})
	}
}

// labelDelta is idempotent: applying the computed delta and recomputing
// yields nothing.
func TestLabelDeltaIdempotent(t *testing.T) {
	existing := []string{"Normal Change Request", "Application"}
	want := []string{"done", "Resolution/Done"}

	first := labelDelta(existing, want)
	after := append(append([]string(nil), existing...), first...)
	second := labelDelta(after, want)
	if len(second) != 0 {
		t.Errorf("re-running the delta must be empty, got %v", second)
	}
}

func TestCloserDryRun(t *testing.T) {
	// Dry run must work without any client and perform no mutation.
	closer := NewCloser(&pipeline.Dependencies{DryRun: true})

	issue := &pipeline.Issue{Org: "acme", Repo: "infra", Number: 42, Labels: []string{"Normal Change Request"}}
	ctx := pipeline.NewContext(context.Background(), issue, config.Default())

	if err := closer.Run(ctx); err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	if !ctx.Result.Closed || !ctx.Result.DryRun {
		t.Errorf("dry run should record intended close: %+v", ctx.Result)
	}
	if len(ctx.Result.LabelsAdded) != 2 {
		t.Errorf("dry run should record intended labels, got %v", ctx.Result.LabelsAdded)
	}
}

func TestCloserRequiresClient(t *testing.T) {
	closer := NewCloser(&pipeline.Dependencies{})

	issue := &pipeline.Issue{Org: "acme", Repo: "infra", Number: 42}
	ctx := pipeline.NewContext(context.Background(), issue, config.Default())

	if err := closer.Run(ctx); err == nil {
		t.Error("expected error without GitHub client")
	}
}
