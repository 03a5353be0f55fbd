// Author: Sachindu Nethmin
// GitHub: https://github.com/Sachindu-Nethmin
// Created: 2026-08-08
// Last Modified: 2026-08-26

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/changeops/crsweep/internal/core/config"
	"github.com/changeops/crsweep/internal/core/pipeline"
	"github.com/changeops/crsweep/internal/integrations/github"
	"github.com/changeops/crsweep/internal/steps"
)

var (
	sweepRepo        string
	sweepDry         bool
	sweepCheckStatus bool
	sweepNoFilter    bool
)

var (
	sweepTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff7300")).
			Bold(true)

	sweepOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	sweepSubtleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#626262"))
)

// SweepSummary holds the outcome of one sweep run.
type SweepSummary struct {
	RunID            string        `json:"run_id"`
	Repository       string        `json:"repository"`
	Processed        int           `json:"processed"`
	Closed           int           `json:"closed"`
	SkippedLabels    int           `json:"skipped_labels"`
	SkippedChecklist int           `json:"skipped_checklist"`
	SkippedStatus    int           `json:"skipped_status"`
	DryRun           bool          `json:"dry_run,omitempty"`
	Details          []SweepDetail `json:"details,omitempty"`
}

// SweepDetail records the outcome for a single issue.
type SweepDetail struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Action string `json:"action"` // "closed" or "skipped"
	Reason string `json:"reason,omitempty"`
}

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Scan open change-request issues and close the completed ones",
	Long: `Scans open issues carrying the primary change-request label and closes
those whose secondary labels, comment checklist, and (when enabled)
project-board Status indicate the change is complete.

A single page of up to 100 issues is processed per run. Any GitHub API
failure outside the project-status lookup aborts the run.

Usage:
  crsweep sweep [--repo owner/name] [--dry-run] [--check-project-status]`,
	Run: func(cmd *cobra.Command, args []string) {
		runSweep()
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVar(&sweepRepo, "repo", "", "Repository in owner/name format (or set REPO)")
	sweepCmd.Flags().BoolVar(&sweepDry, "dry-run", false, "Log actions without executing them")
	sweepCmd.Flags().BoolVar(&sweepCheckStatus, "check-project-status", false, "Enable the project-board status gate")
	sweepCmd.Flags().BoolVar(&sweepNoFilter, "no-label-filter", false, "List all open issues instead of pre-filtering by the primary label")
}

func runSweep() {
	// 1. Environment: credential and repository identifier are fatal
	// when absent or malformed.
	env, err := config.LoadEnvironment(sweepRepo)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// 2. Config file (optional), then environment overlay.
	cfg := loadSweepConfig()
	env.ApplyTo(cfg)
	if sweepCheckStatus {
		cfg.Project.CheckEnabled = true
	}

	// 3. Clients.
	ctx := context.Background()
	ghClient := github.NewClient(ctx, env.Token)
	gqlClient := github.NewGraphQLClient(nil, env.Token)

	deps := &pipeline.Dependencies{
		GitHub:  ghClient,
		GraphQL: gqlClient,
		DryRun:  sweepDry,
	}

	summary := &SweepSummary{
		RunID:      uuid.NewString(),
		Repository: env.Owner + "/" + env.Repo,
		DryRun:     sweepDry,
	}

	fmt.Println(sweepTitleStyle.Render(fmt.Sprintf("[crsweep] Sweeping %s (run %s)", summary.Repository, summary.RunID)))
	if cfg.Project.CheckEnabled {
		fmt.Println(sweepSubtleStyle.Render("Project-status gate: enabled"))
	}

	// 4. List open issues, pre-filtered by the primary label unless
	// disabled. A single page of up to 100; there is no pagination.
	filter := cfg.Labels.Primary
	if sweepNoFilter {
		filter = ""
	}
	issues, err := ghClient.ListOpenIssues(ctx, env.Owner, env.Repo, filter)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Found %d open issues\n\n", len(issues))

	// 5. Evaluate each issue sequentially through the pipeline.
	registry := pipeline.NewRegistry()
	steps.RegisterAll(registry)

	stepNames := pipeline.ResolveSteps(nil, "cr-sweep")
	pl, err := registry.BuildFromNames(stepNames, deps)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	for _, apiIssue := range issues {
		issue := issueFromAPI(env.Owner, env.Repo, apiIssue)
		summary.Processed++

		pCtx := pipeline.NewContext(ctx, issue, cfg)
		if err := pl.Run(pCtx); err != nil {
			// Any non-skip failure is fatal for the whole run: no
			// retries, no skip-and-continue.
			fmt.Printf("Error on #%d: %v\n", issue.Number, err)
			os.Exit(1)
		}

		detail := SweepDetail{Number: issue.Number, Title: issue.Title}
		if pCtx.Result.Skipped {
			detail.Action = "skipped"
			detail.Reason = pCtx.Result.SkipReason
			switch pCtx.Result.SkippedBy {
			case "checklist":
				summary.SkippedChecklist++
			case "project_status":
				summary.SkippedStatus++
			default:
				summary.SkippedLabels++
			}
			fmt.Printf("  #%d: skipped: %s\n", issue.Number, pCtx.Result.SkipReason)
		} else {
			detail.Action = "closed"
			summary.Closed++
			fmt.Println(sweepOKStyle.Render(fmt.Sprintf("  #%d: closed (labels added: %v)", issue.Number, pCtx.Result.LabelsAdded)))
		}
		summary.Details = append(summary.Details, detail)
	}

	printSweepSummary(summary)
}

func printSweepSummary(summary *SweepSummary) {
	fmt.Println()
	fmt.Println(sweepTitleStyle.Render("=== Sweep Summary ==="))
	fmt.Printf("Processed: %d\n", summary.Processed)
	fmt.Printf("Closed:    %d\n", summary.Closed)
	fmt.Printf("Skipped (labels):     %d\n", summary.SkippedLabels)
	fmt.Printf("Skipped (checklist):  %d\n", summary.SkippedChecklist)
	fmt.Printf("Skipped (status):     %d\n", summary.SkippedStatus)
	if summary.DryRun {
		fmt.Println(sweepSubtleStyle.Render("Dry run: no labels were added, no issues were closed"))
	}

	for _, d := range summary.Details {
		if d.Action == "closed" {
			fmt.Println(sweepOKStyle.Render(fmt.Sprintf("  closed #%d: %s", d.Number, d.Title)))
		}
	}

	if verbose {
		resultBytes, err := json.MarshalIndent(summary, "", "  ")
		if err == nil {
			fmt.Println("\n=== Detailed Result ===")
			fmt.Println(string(resultBytes))
		}
	}
}
