// Author: Sachindu Nethmin
// GitHub: https://github.com/Sachindu-Nethmin
// Created: 2026-08-02
// Last Modified: 2026-08-24

package steps

import (
	"fmt"
	"log"

	"github.com/changeops/crsweep/internal/checklist"
	"github.com/changeops/crsweep/internal/core/pipeline"
	"github.com/changeops/crsweep/internal/integrations/github"
	"github.com/changeops/crsweep/internal/utils/text"
)

// ChecklistCheck fetches the issue's comments and verifies that every
// checklist keyword appears checked off. This is the first gate that
// touches the network.
type ChecklistCheck struct {
	github *github.Client
}

// NewChecklistCheck creates a new checklist gate.
func NewChecklistCheck(deps *pipeline.Dependencies) *ChecklistCheck {
	return &ChecklistCheck{
		github: deps.GitHub,
	}
}

// Name returns the step name.
func (s *ChecklistCheck) Name() string {
	return "checklist"
}

// Run fetches comments and applies the configured matcher. A failing
// comment fetch is fatal for the run; an incomplete checklist only
// skips the issue.
func (s *ChecklistCheck) Run(ctx *pipeline.Context) error {
	if s.github == nil {
		return fmt.Errorf("GitHub client is required for the checklist gate")
	}

	cfg := ctx.Config.Checklist
	strategy, err := text.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	scope, err := checklist.ParseScope(cfg.Scope)
	if err != nil {
		return err
	}
	matcher, err := checklist.New(cfg.Keywords, strategy, scope)
	if err != nil {
		return err
	}

	comments, err := s.github.ListComments(ctx.Ctx, ctx.Issue.Org, ctx.Issue.Repo, ctx.Issue.Number)
	if err != nil {
		return fmt.Errorf("failed to fetch comments for #%d: %w", ctx.Issue.Number, err)
	}

	bodies := make([]string, 0, len(comments))
	for _, c := range comments {
		if body := c.GetBody(); body != "" {
			bodies = append(bodies, body)
		}
	}

	complete, found := matcher.Complete(bodies)
	ctx.Result.ChecklistFound = found
	log.Printf("[checklist] #%d: found %d/%d keywords: %v",
		ctx.Issue.Number, len(found), len(cfg.Keywords), found)

	if !complete {
		return ctx.Result.Skip(s.Name(),
			fmt.Sprintf("checklist incomplete (%d of %d keywords checked)", len(found), len(cfg.Keywords)))
	}

	return nil
}
