// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-07-22
// Last Modified: 2026-08-24

// Package steps contains the eligibility gates. Each gate implements
// the pipeline.Step interface and short-circuits with a skip reason on
// the first failing condition.
package steps

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/changeops/crsweep/internal/core/pipeline"
)

// Gatekeeper evaluates the pure label gates: primary label membership,
// secondary label intersection, terminal label absence, and the
// optional age threshold. It performs no network calls, so ineligible
// issues never trigger comment or project lookups.
type Gatekeeper struct {
	now func() time.Time
}

// NewGatekeeper creates a new gatekeeper step.
func NewGatekeeper(deps *pipeline.Dependencies) *Gatekeeper {
	return &Gatekeeper{
		now: time.Now,
	}
}

// Name returns the step name.
func (s *Gatekeeper) Name() string {
	return "gatekeeper"
}

// Run checks the label gates in fixed order.
func (s *Gatekeeper) Run(ctx *pipeline.Context) error {
	labels := ctx.Config.Labels
	issue := ctx.Issue

	log.Printf("[gatekeeper] #%d: %s (labels: %s)",
		issue.Number, issue.Title, strings.Join(issue.Labels, ", "))

	if !issue.HasLabel(labels.Primary) {
		return ctx.Result.Skip(s.Name(),
			fmt.Sprintf("missing primary label %q", labels.Primary))
	}

	if !issue.HasAnyLabel(labels.Secondary) {
		return ctx.Result.Skip(s.Name(),
			fmt.Sprintf("missing secondary label (one of: %s)", strings.Join(labels.Secondary, ", ")))
	}

	if issue.HasLabel(labels.Terminal) {
		return ctx.Result.Skip(s.Name(),
			fmt.Sprintf("already processed (terminal label %q present)", labels.Terminal))
	}

	if minAge := ctx.Config.Gates.MinAgeHours; minAge > 0 {
		age := s.now().Sub(issue.CreatedAt)
		required := time.Duration(minAge) * time.Hour
		if age < required {
			return ctx.Result.Skip(s.Name(),
				fmt.Sprintf("issue is %s old, required minimum is %s", age.Round(time.Hour), required))
		}
	}

	return nil
}
