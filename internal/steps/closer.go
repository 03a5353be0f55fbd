// Author: Sachindu Nethmin
// GitHub: https://github.com/Sachindu-Nethmin
// Created: 2026-08-08
// Last Modified: 2026-08-24

package steps

import (
	"fmt"
	"log"

	"github.com/changeops/crsweep/internal/core/pipeline"
	"github.com/changeops/crsweep/internal/integrations/github"
)

// Closer applies the resolution labels and closes the issue. The label
// delta is idempotent: labels already present are never re-requested,
// and an empty delta makes no label call at all. There is no rollback;
// a failed close after a successful label add leaves the issue
// labeled-but-open, which a later run resolves via the terminal label.
type Closer struct {
	github *github.Client
	dryRun bool
}

// NewCloser creates a new closer step.
func NewCloser(deps *pipeline.Dependencies) *Closer {
	return &Closer{
		github: deps.GitHub,
		dryRun: deps.DryRun,
	}
}

// Name returns the step name.
func (s *Closer) Name() string {
	return "closer"
}

// Run adds the missing resolution labels and closes the issue.
func (s *Closer) Run(ctx *pipeline.Context) error {
	delta := labelDelta(ctx.Issue.Labels, ctx.Config.Labels.OnClose)

	if s.dryRun {
		log.Printf("[closer] DRY RUN: would add labels %v and close #%d", delta, ctx.Issue.Number)
		ctx.Result.LabelsAdded = delta
		ctx.Result.Closed = true
		ctx.Result.DryRun = true
		return nil
	}

	if s.github == nil {
		return fmt.Errorf("GitHub client is required for the closer")
	}

	if len(delta) > 0 {
		if err := s.github.AddLabels(ctx.Ctx, ctx.Issue.Org, ctx.Issue.Repo, ctx.Issue.Number, delta); err != nil {
			return fmt.Errorf("failed to add labels to #%d: %w", ctx.Issue.Number, err)
		}
		ctx.Result.LabelsAdded = delta
	}

	if err := s.github.CloseIssue(ctx.Ctx, ctx.Issue.Org, ctx.Issue.Repo, ctx.Issue.Number); err != nil {
		return fmt.Errorf("failed to close #%d: %w", ctx.Issue.Number, err)
	}

	ctx.Result.Closed = true
	log.Printf("[closer] Closed #%d, added labels %v", ctx.Issue.Number, delta)
	return nil
}

// labelDelta returns the labels from want that are not already present.
// Order of want is preserved; duplicates in want are collapsed.
func labelDelta(existing, want []string) []string {
	present := make(map[string]bool, len(existing))
	for _, l := range existing {
		present[l] = true
	}

	var delta []string
	for _, l := range want {
		if !present[l] {
			delta = append(delta, l)
			present[l] = true
		}
	}
	return delta
}
