// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-08-12
// Last Modified: 2026-08-26

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/changeops/crsweep/internal/core/config"
	"github.com/changeops/crsweep/internal/core/pipeline"
	"github.com/changeops/crsweep/internal/steps"
	"github.com/changeops/crsweep/internal/tui"
)

// statusReportingStep wraps a gate and forwards its outcome to the TUI.
type statusReportingStep struct {
	inner      pipeline.Step
	statusChan chan<- tui.GateStatusMsg
}

func (s *statusReportingStep) Name() string {
	return s.inner.Name()
}

func (s *statusReportingStep) Run(ctx *pipeline.Context) error {
	s.statusChan <- tui.GateStatusMsg{Gate: s.Name(), Status: "started"}

	err := s.inner.Run(ctx)

	if err != nil {
		if errors.Is(err, pipeline.ErrSkipIssue) {
			s.statusChan <- tui.GateStatusMsg{Gate: s.Name(), Status: "skipped", Message: ctx.Result.SkipReason}
			return err
		}
		s.statusChan <- tui.GateStatusMsg{Gate: s.Name(), Status: "error", Message: err.Error()}
		return err
	}

	s.statusChan <- tui.GateStatusMsg{Gate: s.Name(), Status: "success"}
	return nil
}

// runGates evaluates one issue through the named gates, reporting
// progress on statusChan. p may be nil in CI mode; progress then goes
// to stdout only.
func runGates(p *tea.Program, deps *pipeline.Dependencies, stepNames []string, issue *pipeline.Issue, cfg *config.Config, statusChan chan tui.GateStatusMsg) {
	// In CI mode nothing reads the channel; drain it ourselves. The
	// wait is registered before the close so the defers unwind as
	// close-then-wait.
	if p == nil {
		drained := make(chan struct{})
		go func() {
			for msg := range statusChan {
				if msg.Message != "" {
					fmt.Printf("[%s] %s: %s\n", msg.Gate, msg.Status, msg.Message)
				} else {
					fmt.Printf("[%s] %s\n", msg.Gate, msg.Status)
				}
			}
			close(drained)
		}()
		defer func() { <-drained }()
	}
	defer close(statusChan)

	ctx := context.Background()
	pCtx := pipeline.NewContext(ctx, issue, cfg)

	registry := pipeline.NewRegistry()
	steps.RegisterAll(registry)

	builtSteps, err := registry.BuildFromNames(stepNames, deps)
	if err != nil {
		if p != nil {
			p.Send(tui.ResultMsg{Success: false, Output: err.Error()})
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}

	var wrappedSteps []pipeline.Step
	for _, step := range builtSteps.Steps() {
		wrappedSteps = append(wrappedSteps, &statusReportingStep{inner: step, statusChan: statusChan})
	}

	finalPipeline := pipeline.New(wrappedSteps...)

	if err := finalPipeline.Run(pCtx); err != nil {
		if p != nil {
			p.Send(tui.ResultMsg{Success: false, Output: err.Error()})
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}

	resultBytes, _ := json.MarshalIndent(pCtx.Result, "", "  ")
	if p != nil {
		p.Send(tui.ResultMsg{Success: true, Output: string(resultBytes)})
	} else {
		fmt.Println(string(resultBytes))
	}
}
