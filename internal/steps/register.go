// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-07-22
// Last Modified: 2026-08-24

package steps

import (
	"github.com/changeops/crsweep/internal/core/pipeline"
)

// RegisterAll registers all built-in steps with the registry.
func RegisterAll(r *pipeline.Registry) {
	r.Register("gatekeeper", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewGatekeeper(deps), nil
	})

	r.Register("checklist", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewChecklistCheck(deps), nil
	})

	r.Register("project_status", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewProjectStatusCheck(deps), nil
	})

	r.Register("closer", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewCloser(deps), nil
	})
}
