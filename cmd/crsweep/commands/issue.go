// Author: Sachindu Nethmin
// GitHub: https://github.com/Sachindu-Nethmin
// Created: 2026-08-08
// Last Modified: 2026-08-26

package commands

import (
	"fmt"
	"os"

	githubapi "github.com/google/go-github/v60/github"

	"github.com/changeops/crsweep/internal/core/config"
	"github.com/changeops/crsweep/internal/core/pipeline"
)

// issueFromAPI converts a go-github issue into the pipeline snapshot.
func issueFromAPI(org, repo string, issue *githubapi.Issue) *pipeline.Issue {
	labels := make([]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, l.GetName())
	}

	return &pipeline.Issue{
		Org:       org,
		Repo:      repo,
		Number:    issue.GetNumber(),
		NodeID:    issue.GetNodeID(),
		Title:     issue.GetTitle(),
		State:     issue.GetState(),
		Labels:    labels,
		CreatedAt: issue.GetCreatedAt().Time,
		URL:       issue.GetHTMLURL(),
	}
}

// loadSweepConfig loads the config file if one exists, falling back to
// built-in defaults.
func loadSweepConfig() *config.Config {
	actualCfgPath := cfgFile
	if actualCfgPath == "" {
		actualCfgPath = config.FindConfigPath("")
	}

	if actualCfgPath == "" {
		if verbose {
			fmt.Println("No configuration file found. Using defaults.")
		}
		return config.Default()
	}

	cfg, err := config.Load(actualCfgPath)
	if err != nil {
		// A present-but-broken config is a configuration error, not
		// something to paper over with defaults.
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("Loaded config from %s\n", actualCfgPath)
	}
	return cfg
}
