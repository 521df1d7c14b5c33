// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"sync"

	"github.com/google/go-github/v69/github"
)

// ForgeAPIClient is a mock implementation of forge.APIClient with call tracking.
type ForgeAPIClient struct {
	mu    sync.Mutex
	calls []MethodCall

	// Configurable responses
	GetPullRequestResponse         *github.PullRequest
	GetPullRequestError            error
	ListPullRequestFilesResponse   []*github.CommitFile
	ListPullRequestFilesError      error
	ListIssueCommentsResponse      []*github.IssueComment
	ListIssueCommentsError         error
	ListPullRequestCommitsResponse []*github.RepositoryCommit
	ListPullRequestCommitsError    error
	ListReviewsResponse            []*github.PullRequestReview
	ListReviewsError               error
	ReviewCommentsByID             map[int64][]*github.PullRequestComment
	ReviewCommentsErrors           map[int64]error
	GetIssueResponse               *github.Issue
	GetIssueError                  error
	GetUserResponse                *github.User
	GetUserError                   error
	CreateIssueCommentResponse     *github.IssueComment
	CreateIssueCommentError        error
}

// MethodCall represents a tracked method call with its parameters.
type MethodCall struct {
	Method string
	Args   map[string]any
}

// NewForgeAPIClient creates a new mock forge API client.
func NewForgeAPIClient() *ForgeAPIClient {
	return &ForgeAPIClient{
		calls:                make([]MethodCall, 0),
		ReviewCommentsByID:   make(map[int64][]*github.PullRequestComment),
		ReviewCommentsErrors: make(map[int64]error),
	}
}

func (m *ForgeAPIClient) trackCall(method string, args map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MethodCall{Method: method, Args: args})
}

// GetCallCount returns how many times the named method was called.
func (m *ForgeAPIClient) GetCallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, call := range m.calls {
		if call.Method == method {
			count++
		}
	}
	return count
}

// GetPullRequest implements forge.APIClient.
func (m *ForgeAPIClient) GetPullRequest(_ context.Context, owner, repo string, number int) (*github.PullRequest, error) {
	m.trackCall("GetPullRequest", map[string]any{
		"owner": owner, "repo": repo, "number": number,
	})
	return m.GetPullRequestResponse, m.GetPullRequestError
}

// ListPullRequestFiles implements forge.APIClient.
func (m *ForgeAPIClient) ListPullRequestFiles(_ context.Context, owner, repo string, number int) ([]*github.CommitFile, error) {
	m.trackCall("ListPullRequestFiles", map[string]any{
		"owner": owner, "repo": repo, "number": number,
	})
	return m.ListPullRequestFilesResponse, m.ListPullRequestFilesError
}

// ListIssueComments implements forge.APIClient.
func (m *ForgeAPIClient) ListIssueComments(_ context.Context, owner, repo string, number int) ([]*github.IssueComment, error) {
	m.trackCall("ListIssueComments", map[string]any{
		"owner": owner, "repo": repo, "number": number,
	})
	return m.ListIssueCommentsResponse, m.ListIssueCommentsError
}

// ListPullRequestCommits implements forge.APIClient.
func (m *ForgeAPIClient) ListPullRequestCommits(_ context.Context, owner, repo string, number int) ([]*github.RepositoryCommit, error) {
	m.trackCall("ListPullRequestCommits", map[string]any{
		"owner": owner, "repo": repo, "number": number,
	})
	return m.ListPullRequestCommitsResponse, m.ListPullRequestCommitsError
}

// ListReviews implements forge.APIClient.
func (m *ForgeAPIClient) ListReviews(_ context.Context, owner, repo string, number int) ([]*github.PullRequestReview, error) {
	m.trackCall("ListReviews", map[string]any{
		"owner": owner, "repo": repo, "number": number,
	})
	return m.ListReviewsResponse, m.ListReviewsError
}

// ListReviewComments implements forge.APIClient.
func (m *ForgeAPIClient) ListReviewComments(_ context.Context, owner, repo string, number int, reviewID int64) ([]*github.PullRequestComment, error) {
	m.trackCall("ListReviewComments", map[string]any{
		"owner": owner, "repo": repo, "number": number, "reviewID": reviewID,
	})
	if err, ok := m.ReviewCommentsErrors[reviewID]; ok {
		return nil, err
	}
	return m.ReviewCommentsByID[reviewID], nil
}

// ListReviewCommentsRaw implements forge.APIClient. It shares the response
// tables with ListReviewComments; call tracking tells the two apart.
func (m *ForgeAPIClient) ListReviewCommentsRaw(_ context.Context, owner, repo string, number int, reviewID int64) ([]*github.PullRequestComment, error) {
	m.trackCall("ListReviewCommentsRaw", map[string]any{
		"owner": owner, "repo": repo, "number": number, "reviewID": reviewID,
	})
	if err, ok := m.ReviewCommentsErrors[reviewID]; ok {
		return nil, err
	}
	return m.ReviewCommentsByID[reviewID], nil
}

// GetIssue implements forge.APIClient.
func (m *ForgeAPIClient) GetIssue(_ context.Context, owner, repo string, number int) (*github.Issue, error) {
	m.trackCall("GetIssue", map[string]any{
		"owner": owner, "repo": repo, "number": number,
	})
	return m.GetIssueResponse, m.GetIssueError
}

// GetUser implements forge.APIClient.
func (m *ForgeAPIClient) GetUser(_ context.Context, login string) (*github.User, error) {
	m.trackCall("GetUser", map[string]any{
		"login": login,
	})
	return m.GetUserResponse, m.GetUserError
}

// CreateIssueComment implements forge.APIClient.
func (m *ForgeAPIClient) CreateIssueComment(_ context.Context, owner, repo string, number int, body string) (*github.IssueComment, error) {
	m.trackCall("CreateIssueComment", map[string]any{
		"owner": owner, "repo": repo, "number": number, "body": body,
	})
	return m.CreateIssueCommentResponse, m.CreateIssueCommentError
}
