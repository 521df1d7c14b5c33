// Package forge provides the authenticated REST client shared by both
// supported platforms. GitHub and Gitea expose the same REST dialect for the
// resources this tool reads, so a single go-github client pointed at the
// configured base URL serves both; the one Gitea-specific endpoint goes
// through a generic request.
package forge

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/forgekit/prfetch/pkg/config"
	"github.com/google/go-github/v69/github"
	"golang.org/x/oauth2"
)

// NewClient creates a new forge client from the resolved configuration.
// An empty token yields an unauthenticated client.
func NewClient(cfg *config.Config) (*Client, error) {
	ctx := context.Background()

	var httpClient *http.Client
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: cfg.Token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(httpClient)

	// go-github requires the base URL to end with a slash.
	baseURL := cfg.APIBaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errInvalidBaseURL, cfg.APIBaseURL)
	}
	client.BaseURL = parsed

	return &Client{client: client}, nil
}

// GetPullRequest fetches a pull request's metadata.
func (c *Client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get pull request: %w", err)
	}
	return pr, nil
}

// ListPullRequestFiles returns the first page of changed files.
func (c *Client) ListPullRequestFiles(ctx context.Context, owner, repo string, number int) ([]*github.CommitFile, error) {
	files, _, err := c.client.PullRequests.ListFiles(ctx, owner, repo, number, &github.ListOptions{
		PerPage: maxItemsPerPage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull request files: %w", err)
	}
	return files, nil
}

// ListIssueComments returns the first page of issue-style comments.
func (c *Client) ListIssueComments(ctx context.Context, owner, repo string, number int) ([]*github.IssueComment, error) {
	comments, _, err := c.client.Issues.ListComments(ctx, owner, repo, number, &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: maxItemsPerPage},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list issue comments: %w", err)
	}
	return comments, nil
}

// ListPullRequestCommits returns the first page of commits.
func (c *Client) ListPullRequestCommits(ctx context.Context, owner, repo string, number int) ([]*github.RepositoryCommit, error) {
	commits, _, err := c.client.PullRequests.ListCommits(ctx, owner, repo, number, &github.ListOptions{
		PerPage: maxItemsPerPage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull request commits: %w", err)
	}
	return commits, nil
}

// ListReviews returns the first page of reviews.
func (c *Client) ListReviews(ctx context.Context, owner, repo string, number int) ([]*github.PullRequestReview, error) {
	reviews, _, err := c.client.PullRequests.ListReviews(ctx, owner, repo, number, &github.ListOptions{
		PerPage: maxItemsPerPage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// ListReviewComments returns a review's line comments via the typed endpoint.
func (c *Client) ListReviewComments(ctx context.Context, owner, repo string, number int, reviewID int64) ([]*github.PullRequestComment, error) {
	comments, _, err := c.client.PullRequests.ListReviewComments(ctx, owner, repo, number, reviewID, &github.ListOptions{
		PerPage: maxItemsPerPage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list review comments: %w", err)
	}
	return comments, nil
}

// ListReviewCommentsRaw returns a review's line comments via a generic
// request, for Gitea servers that only expose the endpoint path.
func (c *Client) ListReviewCommentsRaw(ctx context.Context, owner, repo string, number int, reviewID int64) ([]*github.PullRequestComment, error) {
	u := fmt.Sprintf("repos/%s/%s/pulls/%d/reviews/%d/comments", owner, repo, number, reviewID)

	req, err := c.client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build review comments request: %w", err)
	}

	var comments []*github.PullRequestComment
	if _, err := c.client.Do(ctx, req, &comments); err != nil {
		return nil, fmt.Errorf("failed to list review comments: %w", err)
	}
	return comments, nil
}

// GetIssue fetches an issue's metadata.
func (c *Client) GetIssue(ctx context.Context, owner, repo string, number int) (*github.Issue, error) {
	issue, _, err := c.client.Issues.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}
	return issue, nil
}

// GetUser fetches a user by login.
func (c *Client) GetUser(ctx context.Context, login string) (*github.User, error) {
	user, _, err := c.client.Users.Get(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// CreateIssueComment posts a comment on an issue or pull request.
func (c *Client) CreateIssueComment(ctx context.Context, owner, repo string, number int, body string) (*github.IssueComment, error) {
	comment, _, err := c.client.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}
