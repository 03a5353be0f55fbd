// Author: Sachindu Nethmin
// GitHub: https://github.com/Sachindu-Nethmin
// Created: 2026-08-05
// Last Modified: 2026-08-24

package steps

import (
	"log"
	"strings"

	"github.com/changeops/crsweep/internal/core/pipeline"
	"github.com/changeops/crsweep/internal/integrations/github"
	"github.com/changeops/crsweep/internal/utils/text"
)

// ProjectStatusCheck queries the linked project board for the Status
// field and requires a value denoting completion. Lookup and parse
// errors are fail-closed: they are logged and the issue is treated as
// not done, so one broken board linkage never aborts the run.
type ProjectStatusCheck struct {
	graphql *github.GraphQLClient
}

// NewProjectStatusCheck creates a new project-status gate.
func NewProjectStatusCheck(deps *pipeline.Dependencies) *ProjectStatusCheck {
	return &ProjectStatusCheck{
		graphql: deps.GraphQL,
	}
}

// Name returns the step name.
func (s *ProjectStatusCheck) Name() string {
	return "project_status"
}

// Run checks the Status field on the designated board. Disabled unless
// the configuration (or CHECK_PROJECT_STATUS) turns the gate on.
func (s *ProjectStatusCheck) Run(ctx *pipeline.Context) error {
	cfg := ctx.Config.Project
	if !cfg.CheckEnabled {
		log.Printf("[project_status] #%d: gate disabled, skipping check", ctx.Issue.Number)
		return nil
	}

	if s.graphql == nil {
		log.Printf("[project_status] #%d: no GraphQL client, treating status as not done", ctx.Issue.Number)
		return ctx.Result.Skip(s.Name(), "project status unavailable")
	}

	statuses, err := s.graphql.IssueProjectStatuses(ctx.Ctx, ctx.Issue.Org, ctx.Issue.Repo, ctx.Issue.Number, cfg.StatusField)
	if err != nil {
		log.Printf("[project_status] #%d: lookup failed (%v), treating status as not done", ctx.Issue.Number, err)
		return ctx.Result.Skip(s.Name(), "project status lookup failed")
	}

	if statusDone(statuses, cfg.Title, cfg.DoneValue) {
		ctx.Result.StatusDone = true
		return nil
	}

	return ctx.Result.Skip(s.Name(), "project status is not done")
}

// statusDone reports whether any item on the designated board carries a
// completion value. The comparison folds Unicode noise and is
// case/whitespace-insensitive; items on other boards are ignored.
func statusDone(statuses []github.ProjectStatus, boardTitle, doneValue string) bool {
	want := text.Normalize(text.StrategyUnicodeFold, doneValue)
	if want == "" {
		return false
	}

	for _, st := range statuses {
		if st.ProjectTitle != boardTitle {
			continue
		}
		got := text.Normalize(text.StrategyUnicodeFold, st.StatusName)
		if strings.Contains(got, want) {
			return true
		}
	}
	return false
}
