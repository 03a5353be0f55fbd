// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-07-22
// Last Modified: 2026-08-24

package steps

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/changeops/crsweep/internal/core/config"
	"github.com/changeops/crsweep/internal/core/pipeline"
)

func newGateContext(labels []string) *pipeline.Context {
	issue := &pipeline.Issue{
		Org:       "acme",
		Repo:      "infra",
		Number:    7,
		Title:     "Patch the frobnicator",
		Labels:    labels,
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}
	return pipeline.NewContext(context.Background(), issue, config.Default())
}

// The gatekeeper is constructed with empty dependencies in every test:
// it must never need a network client, so ineligible issues are
// rejected before any comment or project fetch could happen.
func TestGatekeeperShortCircuit(t *testing.T) {
	tests := []struct {
		name       string
		labels     []string
		wantSkip   bool
		wantReason string
	}{
		{
			name:       "missing primary label",
			labels:     []string{"Application"},
			wantSkip:   true,
			wantReason: "missing primary label",
		},
		{
			name:       "missing secondary label",
			labels:     []string{"Normal Change Request"},
			wantSkip:   true,
			wantReason: "missing secondary label",
		},
		{
			name:       "terminal label present",
			labels:     []string{"Normal Change Request", "Infrastructure", "done"},
			wantSkip:   true,
			wantReason: "already processed",
		},
		{
			name:     "eligible",
			labels:   []string{"Normal Change Request", "Application"},
			wantSkip: false,
		},
		{
			name:     "eligible with extra labels",
			labels:   []string{"Normal Change Request", "Infrastructure", "urgent"},
			wantSkip: false,
		},
	}

	gate := NewGatekeeper(&pipeline.Dependencies{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newGateContext(tt.labels)
			err := gate.Run(ctx)

			if tt.wantSkip {
				if !errors.Is(err, pipeline.ErrSkipIssue) {
					t.Fatalf("expected skip, got %v", err)
				}
				if !ctx.Result.Skipped || ctx.Result.SkippedBy != "gatekeeper" {
					t.Errorf("result not marked skipped: %+v", ctx.Result)
				}
				if !strings.Contains(ctx.Result.SkipReason, tt.wantReason) {
					t.Errorf("skip reason %q does not mention %q", ctx.Result.SkipReason, tt.wantReason)
				}
				return
			}

			if err != nil {
				t.Fatalf("expected pass, got %v", err)
			}
		})
	}
}

func TestGatekeeperAgeThreshold(t *testing.T) {
	gate := NewGatekeeper(&pipeline.Dependencies{})

	ctx := newGateContext([]string{"Normal Change Request", "Application"})
	ctx.Config.Gates.MinAgeHours = 24
	if err := gate.Run(ctx); err != nil {
		t.Errorf("48h old issue must pass a 24h threshold, got %v", err)
	}

	ctx = newGateContext([]string{"Normal Change Request", "Application"})
	ctx.Config.Gates.MinAgeHours = 72
	if err := gate.Run(ctx); !errors.Is(err, pipeline.ErrSkipIssue) {
		t.Errorf("48h old issue must fail a 72h threshold, got %v", err)
	}
}
