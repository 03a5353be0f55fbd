// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-07-25
// Last Modified: 2026-08-22

package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const graphQLEndpoint = "https://api.github.com/graphql"

// GraphQLClient provides access to GitHub's GraphQL API, used for the
// Projects v2 field lookups the REST API does not expose.
type GraphQLClient struct {
	httpClient *http.Client
	token      string
	endpoint   string
}

// NewGraphQLClient creates a new GraphQL client with the given token.
func NewGraphQLClient(httpClient *http.Client, token string) *GraphQLClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GraphQLClient{
		httpClient: httpClient,
		token:      token,
		endpoint:   graphQLEndpoint,
	}
}

// WithEndpoint sets a custom GraphQL endpoint (tests, Enterprise).
func (c *GraphQLClient) WithEndpoint(endpoint string) *GraphQLClient {
	c.endpoint = endpoint
	return c
}

// graphQLRequest represents a GraphQL request payload.
type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// graphQLResponse represents a GraphQL response.
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

// execute sends a GraphQL query/mutation and returns the response data.
func (c *GraphQLClient) execute(ctx context.Context, query string, variables map[string]interface{}) (json.RawMessage, error) {
	reqBody := graphQLRequest{
		Query:     query,
		Variables: variables,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Truncate response body to avoid leaking sensitive data in logs
		truncated := string(respBody)
		if len(truncated) > 200 {
			truncated = truncated[:200] + "..."
		}
		return nil, fmt.Errorf("GraphQL request failed with status %d: %s", resp.StatusCode, truncated)
	}

	var gqlResp graphQLResponse
	if err := json.Unmarshal(respBody, &gqlResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		return nil, fmt.Errorf("GraphQL error: %s", gqlResp.Errors[0].Message)
	}

	return gqlResp.Data, nil
}

// GetIssueNodeID fetches the GraphQL node ID for an issue.
func (c *GraphQLClient) GetIssueNodeID(ctx context.Context, owner, repo string, number int) (string, error) {
	query := `
		query($owner: String!, $repo: String!, $number: Int!) {
			repository(owner: $owner, name: $repo) {
				issue(number: $number) {
					id
				}
			}
		}
	`
	variables := map[string]interface{}{
		"owner":  owner,
		"repo":   repo,
		"number": number,
	}

	data, err := c.execute(ctx, query, variables)
	if err != nil {
		return "", err
	}

	var result struct {
		Repository struct {
			Issue struct {
				ID string `json:"id"`
			} `json:"issue"`
		} `json:"repository"`
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("failed to parse issue ID: %w", err)
	}

	if result.Repository.Issue.ID == "" {
		return "", fmt.Errorf("issue not found: %s/%s#%d", owner, repo, number)
	}

	return result.Repository.Issue.ID, nil
}

// ProjectStatus is one (board title, status value) pair attached to an
// issue via a Projects v2 item.
type ProjectStatus struct {
	ProjectTitle string
	StatusName   string
}

// IssueProjectStatuses fetches the single-select values of the named
// field for every project item linked to the issue. Items whose field
// is unset or not a single-select are returned with an empty StatusName.
func (c *GraphQLClient) IssueProjectStatuses(ctx context.Context, owner, repo string, number int, fieldName string) ([]ProjectStatus, error) {
	query := `
		query($owner: String!, $repo: String!, $number: Int!, $field: String!) {
			repository(owner: $owner, name: $repo) {
				issue(number: $number) {
					projectItems(first: 20) {
						nodes {
							project {
								title
							}
							fieldValueByName(name: $field) {
								... on ProjectV2ItemFieldSingleSelectValue {
									name
								}
							}
						}
					}
				}
			}
		}
	`
	variables := map[string]interface{}{
		"owner":  owner,
		"repo":   repo,
		"number": number,
		"field":  fieldName,
	}

	data, err := c.execute(ctx, query, variables)
	if err != nil {
		return nil, err
	}

	return parseProjectStatuses(data)
}

// parseProjectStatuses decodes the projectItems payload.
func parseProjectStatuses(data json.RawMessage) ([]ProjectStatus, error) {
	var result struct {
		Repository struct {
			Issue struct {
				ProjectItems struct {
					Nodes []struct {
						Project struct {
							Title string `json:"title"`
						} `json:"project"`
						FieldValueByName struct {
							Name string `json:"name"`
						} `json:"fieldValueByName"`
					} `json:"nodes"`
				} `json:"projectItems"`
			} `json:"issue"`
		} `json:"repository"`
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse project items: %w", err)
	}

	nodes := result.Repository.Issue.ProjectItems.Nodes
	statuses := make([]ProjectStatus, 0, len(nodes))
	for _, node := range nodes {
		statuses = append(statuses, ProjectStatus{
			ProjectTitle: node.Project.Title,
			StatusName:   node.FieldValueByName.Name,
		})
	}

	return statuses, nil
}
