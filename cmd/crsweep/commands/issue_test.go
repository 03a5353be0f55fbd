package commands

import (
	"testing"
	"time"

	githubapi "github.com/google/go-github/v60/github"
)

func TestIssueFromAPI(t *testing.T) {
	created := time.Date(2026, 8, 12, 9, 30, 0, 0, time.UTC)
	apiIssue := &githubapi.Issue{
		Number:    githubapi.Int(42),
		NodeID:    githubapi.String("I_kwDO123"),
		Title:     githubapi.String("Deploy payment service v2"),
		State:     githubapi.String("open"),
		HTMLURL:   githubapi.String("https://github.com/acme/infra/issues/42"),
		CreatedAt: &githubapi.Timestamp{Time: created},
		Labels: []*githubapi.Label{
			{Name: githubapi.String("Normal Change Request")},
			{Name: githubapi.String("Application")},
		},
	}

	issue := issueFromAPI("acme", "infra", apiIssue)

	if issue.Org != "acme" || issue.Repo != "infra" || issue.Number != 42 {
		t.Fatalf("unexpected issue identity: %+v", issue)
	}
	if issue.NodeID != "I_kwDO123" {
		t.Errorf("node id = %q", issue.NodeID)
	}
	if issue.Title != "Deploy payment service v2" || issue.State != "open" {
		t.Errorf("unexpected title/state: %q %q", issue.Title, issue.State)
	}
	if issue.URL != "https://github.com/acme/infra/issues/42" {
		t.Errorf("url = %q", issue.URL)
	}
	if !issue.CreatedAt.Equal(created) {
		t.Errorf("created at = %v, want %v", issue.CreatedAt, created)
	}
	if len(issue.Labels) != 2 || issue.Labels[0] != "Normal Change Request" || issue.Labels[1] != "Application" {
		t.Errorf("labels = %v", issue.Labels)
	}
}

func TestIssueFromAPIWithoutLabels(t *testing.T) {
	issue := issueFromAPI("acme", "infra", &githubapi.Issue{
		Number: githubapi.Int(7),
		State:  githubapi.String("open"),
	})

	if len(issue.Labels) != 0 {
		t.Errorf("labels = %v, want none", issue.Labels)
	}
	if issue.HasLabel("Application") {
		t.Error("HasLabel matched on an unlabelled issue")
	}
}
