// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-07-21
// Last Modified: 2026-08-24

// Package pipeline provides the core pipeline engine for the sweep.
// It defines the Step interface and Context structure used by all
// eligibility gates.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/changeops/crsweep/internal/core/config"
)

// ErrSkipIssue indicates that the remaining gates should be skipped for
// the current issue. This is not an error condition: a gate decided the
// issue is not eligible and recorded its reason on the Result.
var ErrSkipIssue = errors.New("skip remaining gates for this issue")

// Step defines the interface that all pipeline steps must implement.
type Step interface {
	// Name returns the unique identifier for this step.
	Name() string

	// Run executes the step's logic.
	// It should return ErrSkipIssue to stop the pipeline gracefully,
	// or any other error to indicate failure.
	Run(ctx *Context) error
}

// Issue is the read-only snapshot of a GitHub issue being evaluated.
// It is fetched once and never re-fetched; label mutations happen
// remotely through the closer.
type Issue struct {
	Org       string
	Repo      string
	Number    int
	NodeID    string
	Title     string
	State     string // "open" or "closed"
	Labels    []string
	CreatedAt time.Time
	URL       string
}

// HasLabel reports whether the issue carries the named label.
func (i *Issue) HasLabel(name string) bool {
	for _, l := range i.Labels {
		if l == name {
			return true
		}
	}
	return false
}

// HasAnyLabel reports whether the issue carries at least one of the
// named labels.
func (i *Issue) HasAnyLabel(names []string) bool {
	for _, n := range names {
		if i.HasLabel(n) {
			return true
		}
	}
	return false
}

// Result holds the accumulated outcome for one issue.
type Result struct {
	IssueNumber    int      `json:"issue_number"`
	Skipped        bool     `json:"skipped"`
	SkippedBy      string   `json:"skipped_by,omitempty"`
	SkipReason     string   `json:"skip_reason,omitempty"`
	ChecklistFound []string `json:"checklist_found,omitempty"`
	StatusDone     bool     `json:"status_done,omitempty"`
	LabelsAdded    []string `json:"labels_added,omitempty"`
	Closed         bool     `json:"closed"`
	DryRun         bool     `json:"dry_run,omitempty"`
}

// Skip marks the result as skipped by the named step and returns
// ErrSkipIssue for the step to propagate.
func (r *Result) Skip(step, reason string) error {
	r.Skipped = true
	r.SkippedBy = step
	r.SkipReason = reason
	return ErrSkipIssue
}

// Context carries data through the pipeline steps.
type Context struct {
	// Ctx is the Go context for cancellation and timeouts.
	Ctx context.Context

	// Issue is the issue being evaluated.
	Issue *Issue

	// Config is the loaded configuration.
	Config *config.Config

	// Result accumulates the evaluation outcome.
	Result *Result

	// Metadata allows steps to pass arbitrary data to subsequent steps.
	Metadata map[string]interface{}
}

// NewContext creates a new pipeline context for an issue.
func NewContext(ctx context.Context, issue *Issue, cfg *config.Config) *Context {
	return &Context{
		Ctx:      ctx,
		Issue:    issue,
		Config:   cfg,
		Result:   &Result{IssueNumber: issue.Number},
		Metadata: make(map[string]interface{}),
	}
}

// Pipeline executes a sequence of steps.
type Pipeline struct {
	steps []Step
}

// New creates a new pipeline with the given steps.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run executes all steps in order.
// Stops on the first error (unless it's ErrSkipIssue, which is graceful).
func (p *Pipeline) Run(ctx *Context) error {
	for _, step := range p.steps {
		if err := step.Run(ctx); err != nil {
			if errors.Is(err, ErrSkipIssue) {
				// Graceful early exit
				return nil
			}
			return fmt.Errorf("step '%s' failed: %w", step.Name(), err)
		}
	}
	return nil
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// Steps returns the list of steps (for introspection).
func (p *Pipeline) Steps() []Step {
	return p.steps
}
