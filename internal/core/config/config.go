// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-07-21
// Last Modified: 2026-08-24

// Package config handles loading and validating sweep configuration.
// The resulting Config is an immutable value built once at process
// entry; components never read the environment themselves.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/changeops/crsweep/internal/checklist"
	"github.com/changeops/crsweep/internal/utils/text"
)

// Config is the root configuration structure.
type Config struct {
	// Labels defines the label gates and the labels applied on close.
	Labels LabelsConfig `yaml:"labels"`

	// Checklist configures the comment checklist matcher.
	Checklist ChecklistConfig `yaml:"checklist"`

	// Project configures the project-board status gate.
	Project ProjectConfig `yaml:"project"`

	// Gates holds the remaining eligibility thresholds.
	Gates GatesConfig `yaml:"gates"`
}

// LabelsConfig holds the label gate settings.
type LabelsConfig struct {
	// Primary must be present for an issue to enter the workflow.
	Primary string `yaml:"primary"`

	// Secondary is the category set; at least one must be present.
	Secondary []string `yaml:"secondary"`

	// Terminal marks an issue as already processed.
	Terminal string `yaml:"terminal"`

	// OnClose is applied (idempotently) before closing.
	OnClose []string `yaml:"on_close"`
}

// ChecklistConfig holds the checklist matcher settings.
type ChecklistConfig struct {
	Keywords []string `yaml:"keywords"`
	Strategy string   `yaml:"strategy"` // exact | line-marker | unicode-fold
	Scope    string   `yaml:"scope"`    // any-comment | same-comment
}

// ProjectConfig holds the project-board status gate settings.
type ProjectConfig struct {
	// Title is the board title; items on other boards are ignored.
	Title string `yaml:"title"`

	// StatusField is the single-select field name to inspect.
	StatusField string `yaml:"status_field"`

	// DoneValue is matched as a normalized substring of the field value.
	DoneValue string `yaml:"done_value"`

	// CheckEnabled turns the gate on. CHECK_PROJECT_STATUS overrides it.
	CheckEnabled bool `yaml:"check_enabled"`
}

// GatesConfig holds miscellaneous eligibility thresholds.
type GatesConfig struct {
	// MinAgeHours skips issues younger than this. 0 disables the gate.
	MinAgeHours int `yaml:"min_age_hours"`
}

// Load reads a config file from the given path and expands environment
// variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return parseRaw(data)
}

// parseRaw parses YAML content, expands env vars, applies defaults, and
// validates.
func parseRaw(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// FindConfigPath searches for a config file in standard locations.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	// Search in common locations
	candidates := []string{
		".github/crsweep.yaml",
		".github/crsweep.yml",
		".crsweep.yaml",
		".crsweep.yml",
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			abs, _ := filepath.Abs(c)
			return abs
		}
	}

	return ""
}

// applyDefaults sets default values for unset fields.
func (c *Config) applyDefaults() {
	if c.Labels.Primary == "" {
		c.Labels.Primary = "Normal Change Request"
	}
	if len(c.Labels.Secondary) == 0 {
		c.Labels.Secondary = []string{"Application", "Infrastructure"}
	}
	if c.Labels.Terminal == "" {
		c.Labels.Terminal = "done"
	}
	if len(c.Labels.OnClose) == 0 {
		c.Labels.OnClose = []string{"done", "Resolution/Done"}
	}
	if len(c.Checklist.Keywords) == 0 {
		c.Checklist.Keywords = []string{"assessed", "authorized", "scheduled", "implemented", "reviewed"}
	}
	if c.Checklist.Strategy == "" {
		c.Checklist.Strategy = string(text.StrategyLineMarker)
	}
	if c.Checklist.Scope == "" {
		c.Checklist.Scope = string(checklist.ScopeAnyComment)
	}
	if c.Project.Title == "" {
		c.Project.Title = "Change Management"
	}
	if c.Project.StatusField == "" {
		c.Project.StatusField = "Status"
	}
	if c.Project.DoneValue == "" {
		c.Project.DoneValue = "done"
	}
}

// Validate rejects values the pipeline cannot act on.
func (c *Config) Validate() error {
	if _, err := text.ParseStrategy(c.Checklist.Strategy); err != nil {
		return fmt.Errorf("checklist.strategy: %w", err)
	}
	if _, err := checklist.ParseScope(c.Checklist.Scope); err != nil {
		return fmt.Errorf("checklist.scope: %w", err)
	}
	if c.Gates.MinAgeHours < 0 {
		return fmt.Errorf("gates.min_age_hours cannot be negative: %d", c.Gates.MinAgeHours)
	}
	return nil
}

// Environment holds the values read from the process environment at
// startup. Absence of the credential or a malformed repository
// identifier is a fatal startup error.
type Environment struct {
	Token              string
	Owner              string
	Repo               string
	CheckProjectStatus bool
	checkStatusSet     bool
}

// LoadEnvironment reads and validates the required environment. The
// repository identifier comes from explicitRepo (a CLI flag) when set,
// then REPO, then GITHUB_REPOSITORY (set by Actions runners).
func LoadEnvironment(explicitRepo string) (*Environment, error) {
	env := &Environment{}

	env.Token = strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
	if env.Token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN environment variable is required")
	}

	repo := strings.TrimSpace(explicitRepo)
	if repo == "" {
		repo = strings.TrimSpace(os.Getenv("REPO"))
	}
	if repo == "" {
		repo = strings.TrimSpace(os.Getenv("GITHUB_REPOSITORY"))
	}
	if repo == "" {
		return nil, fmt.Errorf("repository not set: use --repo or the REPO environment variable (owner/name)")
	}

	owner, name, err := ParseRepo(repo)
	if err != nil {
		return nil, err
	}
	env.Owner = owner
	env.Repo = name

	if raw, ok := os.LookupEnv("CHECK_PROJECT_STATUS"); ok {
		env.CheckProjectStatus = parseBool(raw)
		env.checkStatusSet = true
	}

	return env, nil
}

// ApplyTo overlays environment-driven settings onto the file config.
// Environment always wins over the file.
func (e *Environment) ApplyTo(cfg *Config) {
	if e.checkStatusSet {
		cfg.Project.CheckEnabled = e.CheckProjectStatus
	}
}

// ParseRepo splits an "owner/name" identifier.
func ParseRepo(repo string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(repo), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" || strings.Contains(parts[1], "/") {
		return "", "", fmt.Errorf("invalid repository identifier: %q (expected owner/name)", repo)
	}
	return parts[0], parts[1], nil
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
