package forge

import (
	"context"

	"github.com/google/go-github/v69/github"
)

// APIClient defines the interface for forge API operations.
// This interface enables dependency injection and facilitates black box
// testing by allowing mock implementations to replace the actual client.
type APIClient interface {
	// GetPullRequest fetches a pull request's metadata.
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error)

	// ListPullRequestFiles returns the changed files of a pull request
	// (first page, up to 100 entries).
	ListPullRequestFiles(ctx context.Context, owner, repo string, number int) ([]*github.CommitFile, error)

	// ListIssueComments returns the issue-style comments on an issue or
	// pull request (first page, up to 100 entries).
	ListIssueComments(ctx context.Context, owner, repo string, number int) ([]*github.IssueComment, error)

	// ListPullRequestCommits returns the commits of a pull request
	// (first page, up to 100 entries).
	ListPullRequestCommits(ctx context.Context, owner, repo string, number int) ([]*github.RepositoryCommit, error)

	// ListReviews returns the reviews of a pull request (first page,
	// up to 100 entries).
	ListReviews(ctx context.Context, owner, repo string, number int) ([]*github.PullRequestReview, error)

	// ListReviewComments returns the line comments of a single review
	// through the typed GitHub endpoint.
	ListReviewComments(ctx context.Context, owner, repo string, number int, reviewID int64) ([]*github.PullRequestComment, error)

	// ListReviewCommentsRaw returns the line comments of a single review
	// through a generic request against the Gitea-compatible endpoint path
	// repos/{owner}/{repo}/pulls/{number}/reviews/{reviewID}/comments.
	ListReviewCommentsRaw(ctx context.Context, owner, repo string, number int, reviewID int64) ([]*github.PullRequestComment, error)

	// GetIssue fetches an issue's metadata.
	GetIssue(ctx context.Context, owner, repo string, number int) (*github.Issue, error)

	// GetUser fetches a user by login.
	GetUser(ctx context.Context, login string) (*github.User, error)

	// CreateIssueComment posts a comment on an issue or pull request.
	CreateIssueComment(ctx context.Context, owner, repo string, number int, body string) (*github.IssueComment, error)
}
