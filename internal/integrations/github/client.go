// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-07-21
// Last Modified: 2026-08-22

// Package github wraps the GitHub REST and GraphQL APIs for the sweep.
package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v60/github"
)

// Client wraps the GitHub API client.
type Client struct {
	client *github.Client
}

// ListOpenIssues fetches open issues, optionally pre-filtered by a
// label. A single page of up to 100 items is fetched; pull requests
// (which the API returns as issues) are filtered out.
func (c *Client) ListOpenIssues(ctx context.Context, org, repo, label string) ([]*github.Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}
	if label != "" {
		opts.Labels = []string{label}
	}

	issues, _, err := c.client.Issues.ListByRepo(ctx, org, repo, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}

	filtered := make([]*github.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.PullRequestLinks == nil {
			filtered = append(filtered, issue)
		}
	}

	return filtered, nil
}

// GetIssue fetches issue details.
func (c *Client) GetIssue(ctx context.Context, org, repo string, number int) (*github.Issue, error) {
	issue, _, err := c.client.Issues.Get(ctx, org, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issue: %w", err)
	}

	return issue, nil
}

// ListComments fetches the comments of an issue (first page of 100).
func (c *Client) ListComments(ctx context.Context, org, repo string, number int) ([]*github.IssueComment, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	comments, _, err := c.client.Issues.ListComments(ctx, org, repo, number, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

// AddLabels adds labels to an issue.
func (c *Client) AddLabels(ctx context.Context, org, repo string, number int, labels []string) error {
	if len(labels) == 0 {
		return fmt.Errorf("labels cannot be empty")
	}

	_, _, err := c.client.Issues.AddLabelsToIssue(ctx, org, repo, number, labels)
	if err != nil {
		return fmt.Errorf("failed to add labels: %w", err)
	}
	return nil
}

// CloseIssue transitions an issue to the closed state.
func (c *Client) CloseIssue(ctx context.Context, org, repo string, number int) error {
	req := &github.IssueRequest{
		State: github.String("closed"),
	}
	_, _, err := c.client.Issues.Edit(ctx, org, repo, number, req)
	if err != nil {
		return fmt.Errorf("failed to close issue: %w", err)
	}
	return nil
}
