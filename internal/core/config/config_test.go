// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-07-21
// Last Modified: 2026-08-24

package config

import (
	"testing"
)

// TestConfigDefaults verifies that default values are applied correctly.
func TestConfigDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Labels.Primary != "Normal Change Request" {
		t.Errorf("Expected primary label 'Normal Change Request', got %q", cfg.Labels.Primary)
	}
	if len(cfg.Labels.Secondary) != 2 {
		t.Errorf("Expected 2 secondary labels, got %v", cfg.Labels.Secondary)
	}
	if cfg.Labels.Terminal != "done" {
		t.Errorf("Expected terminal label 'done', got %q", cfg.Labels.Terminal)
	}
	if len(cfg.Checklist.Keywords) != 5 {
		t.Errorf("Expected 5 checklist keywords, got %v", cfg.Checklist.Keywords)
	}
	if cfg.Checklist.Strategy != "line-marker" {
		t.Errorf("Expected strategy 'line-marker', got %q", cfg.Checklist.Strategy)
	}
	if cfg.Checklist.Scope != "any-comment" {
		t.Errorf("Expected scope 'any-comment', got %q", cfg.Checklist.Scope)
	}
	if cfg.Project.Title != "Change Management" {
		t.Errorf("Expected project title 'Change Management', got %q", cfg.Project.Title)
	}
	if cfg.Project.CheckEnabled {
		t.Error("Expected project status gate disabled by default")
	}
	if cfg.Gates.MinAgeHours != 0 {
		t.Errorf("Expected age gate disabled, got %d", cfg.Gates.MinAgeHours)
	}
}

func TestParseRawOverrides(t *testing.T) {
	yamlContent := `
labels:
  primary: "Emergency Change"
  on_close: ["closed-by-sweep"]
checklist:
  strategy: unicode-fold
  scope: same-comment
project:
  check_enabled: true
  title: "Ops Board"
`
	cfg, err := parseRaw([]byte(yamlContent))
	if err != nil {
		t.Fatalf("Failed to parse YAML: %v", err)
	}
	if cfg.Labels.Primary != "Emergency Change" {
		t.Errorf("Expected primary 'Emergency Change', got %q", cfg.Labels.Primary)
	}
	if len(cfg.Labels.OnClose) != 1 || cfg.Labels.OnClose[0] != "closed-by-sweep" {
		t.Errorf("Expected on_close override, got %v", cfg.Labels.OnClose)
	}
	if cfg.Checklist.Strategy != "unicode-fold" {
		t.Errorf("Expected strategy override, got %q", cfg.Checklist.Strategy)
	}
	if cfg.Checklist.Scope != "same-comment" {
		t.Errorf("Expected scope override, got %q", cfg.Checklist.Scope)
	}
	if !cfg.Project.CheckEnabled || cfg.Project.Title != "Ops Board" {
		t.Errorf("Expected project overrides, got %+v", cfg.Project)
	}
	// Defaults still fill the untouched fields
	if cfg.Labels.Terminal != "done" {
		t.Errorf("Expected default terminal label, got %q", cfg.Labels.Terminal)
	}
}

func TestParseRawRejectsInvalid(t *testing.T) {
	if _, err := parseRaw([]byte("checklist:\n  strategy: fuzzy\n")); err == nil {
		t.Error("Expected error for unknown strategy")
	}
	if _, err := parseRaw([]byte("checklist:\n  scope: either\n")); err == nil {
		t.Error("Expected error for unknown scope")
	}
	if _, err := parseRaw([]byte("gates:\n  min_age_hours: -3\n")); err == nil {
		t.Error("Expected error for negative age gate")
	}
}

// TestParseRepo verifies repository identifier parsing.
func TestParseRepo(t *testing.T) {
	tests := []struct {
		name        string
		repo        string
		wantOwner   string
		wantName    string
		expectError bool
	}{
		{"valid", "acme/infra", "acme", "infra", false},
		{"valid with spaces", "  acme/infra  ", "acme", "infra", false},
		{"missing slash", "acmeinfra", "", "", true},
		{"empty owner", "/infra", "", "", true},
		{"empty name", "acme/", "", "", true},
		{"too many parts", "acme/infra/extra", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, name, err := ParseRepo(tt.repo)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for repo %q, got nil", tt.repo)
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if owner != tt.wantOwner || name != tt.wantName {
				t.Errorf("ParseRepo(%q) = (%q, %q), want (%q, %q)",
					tt.repo, owner, name, tt.wantOwner, tt.wantName)
			}
		})
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("REPO", "acme/infra")
		if _, err := LoadEnvironment(""); err == nil {
			t.Error("Expected error for missing GITHUB_TOKEN")
		}
	})

	t.Run("missing repo", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "tok")
		t.Setenv("REPO", "")
		t.Setenv("GITHUB_REPOSITORY", "")
		if _, err := LoadEnvironment(""); err == nil {
			t.Error("Expected error for missing REPO")
		}
	})

	t.Run("malformed repo", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "tok")
		t.Setenv("REPO", "acme")
		if _, err := LoadEnvironment(""); err == nil {
			t.Error("Expected error for malformed REPO")
		}
	})

	t.Run("github repository fallback", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "tok")
		t.Setenv("REPO", "")
		t.Setenv("GITHUB_REPOSITORY", "acme/infra")
		env, err := LoadEnvironment("")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if env.Owner != "acme" || env.Repo != "infra" {
			t.Errorf("Expected acme/infra, got %s/%s", env.Owner, env.Repo)
		}
	})

	t.Run("explicit repo wins over env", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "tok")
		t.Setenv("REPO", "acme/infra")
		env, err := LoadEnvironment("other/repo")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if env.Owner != "other" || env.Repo != "repo" {
			t.Errorf("Expected other/repo, got %s/%s", env.Owner, env.Repo)
		}
	})

	t.Run("status flag overlay", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "tok")
		t.Setenv("REPO", "acme/infra")
		t.Setenv("CHECK_PROJECT_STATUS", "true")
		env, err := LoadEnvironment("")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		cfg := Default()
		env.ApplyTo(cfg)
		if !cfg.Project.CheckEnabled {
			t.Error("Expected CHECK_PROJECT_STATUS=true to enable the gate")
		}

		t.Setenv("CHECK_PROJECT_STATUS", "no")
		env, _ = LoadEnvironment("")
		cfg.Project.CheckEnabled = true
		env.ApplyTo(cfg)
		if cfg.Project.CheckEnabled {
			t.Error("Expected CHECK_PROJECT_STATUS=no to disable the gate")
		}
	})
}
