package fetcher_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/forgekit/prfetch/pkg/config"
	"github.com/forgekit/prfetch/pkg/fetcher"
	"github.com/forgekit/prfetch/testing/fixtures"
	"github.com/forgekit/prfetch/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockWithPullRequest() *mocks.ForgeAPIClient {
	mock := mocks.NewForgeAPIClient()
	mock.GetPullRequestResponse = fixtures.ValidPullRequest()
	mock.ListPullRequestFilesResponse = fixtures.ValidCommitFiles()
	mock.ListIssueCommentsResponse = fixtures.ValidIssueComments()
	mock.ListPullRequestCommitsResponse = fixtures.ValidCommits()
	mock.ListReviewsResponse = fixtures.ValidReviews()
	mock.ReviewCommentsByID[2001] = fixtures.ValidReviewComments()
	mock.ReviewCommentsByID[2002] = nil
	return mock
}

func TestFetcherPullRequest(t *testing.T) {
	t.Run("assembles the full shape", func(t *testing.T) {
		mock := newMockWithPullRequest()
		f := fetcher.New(mock, &config.Config{})

		result, err := f.PullRequest(context.Background(), "acme", "widgets", 42)
		require.NoError(t, err)
		require.NotNil(t, result.Repository.PullRequest)
		assert.Nil(t, result.Repository.Issue)

		pr := result.Repository.PullRequest
		assert.Equal(t, "OPEN", pr.State)
		require.Len(t, pr.Reviews.Nodes, 2)
		assert.Len(t, pr.Reviews.Nodes[0].Comments.Nodes, 1)
		assert.Empty(t, pr.Reviews.Nodes[1].Comments.Nodes)

		assert.Equal(t, 1, mock.GetCallCount("GetPullRequest"))
		assert.Equal(t, 2, mock.GetCallCount("ListReviewComments"))
		assert.Equal(t, 0, mock.GetCallCount("ListReviewCommentsRaw"))
	})

	t.Run("gitea uses the raw review comments endpoint", func(t *testing.T) {
		mock := newMockWithPullRequest()
		f := fetcher.New(mock, &config.Config{UseGitea: true})

		_, err := f.PullRequest(context.Background(), "acme", "widgets", 42)
		require.NoError(t, err)

		assert.Equal(t, 2, mock.GetCallCount("ListReviewCommentsRaw"))
		assert.Equal(t, 0, mock.GetCallCount("ListReviewComments"))
	})

	t.Run("failed review comment fetch degrades in place", func(t *testing.T) {
		mock := newMockWithPullRequest()
		mock.ReviewCommentsErrors[2001] = errors.New("boom")
		f := fetcher.New(mock, &config.Config{})

		result, err := f.PullRequest(context.Background(), "acme", "widgets", 42)
		require.NoError(t, err)

		reviews := result.Repository.PullRequest.Reviews.Nodes
		require.Len(t, reviews, 2, "the failed review still appears")
		assert.Equal(t, "review_2001", reviews[0].ID, "original position kept")
		assert.Empty(t, reviews[0].Comments.Nodes, "failed fetch yields empty list")
		assert.Equal(t, "review_2002", reviews[1].ID)
	})

	t.Run("failed batch call propagates", func(t *testing.T) {
		tests := []struct {
			name string
			set  func(*mocks.ForgeAPIClient)
		}{
			{"pull request", func(m *mocks.ForgeAPIClient) { m.GetPullRequestError = errors.New("boom") }},
			{"files", func(m *mocks.ForgeAPIClient) { m.ListPullRequestFilesError = errors.New("boom") }},
			{"comments", func(m *mocks.ForgeAPIClient) { m.ListIssueCommentsError = errors.New("boom") }},
			{"commits", func(m *mocks.ForgeAPIClient) { m.ListPullRequestCommitsError = errors.New("boom") }},
			{"reviews", func(m *mocks.ForgeAPIClient) { m.ListReviewsError = errors.New("boom") }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mock := newMockWithPullRequest()
				tt.set(mock)
				f := fetcher.New(mock, &config.Config{})

				result, err := f.PullRequest(context.Background(), "acme", "widgets", 42)
				require.Error(t, err)
				assert.Nil(t, result, "no partial result")
			})
		}
	})

	t.Run("output serializes under a repository key", func(t *testing.T) {
		mock := newMockWithPullRequest()
		f := fetcher.New(mock, &config.Config{})

		result, err := f.PullRequest(context.Background(), "acme", "widgets", 42)
		require.NoError(t, err)

		raw, err := json.Marshal(result)
		require.NoError(t, err)

		var decoded map[string]map[string]map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		pr, ok := decoded["repository"]["pullRequest"]
		require.True(t, ok)
		assert.Equal(t, "OPEN", pr["state"])
		assert.Equal(t, "feature/normalize", pr["headRefName"])
	})
}

func TestFetcherIssue(t *testing.T) {
	t.Run("assembles issue with comments", func(t *testing.T) {
		mock := mocks.NewForgeAPIClient()
		mock.GetIssueResponse = fixtures.ValidIssue()
		mock.ListIssueCommentsResponse = fixtures.ValidIssueComments()
		f := fetcher.New(mock, &config.Config{})

		result, err := f.Issue(context.Background(), "acme", "widgets", 7)
		require.NoError(t, err)
		require.NotNil(t, result.Repository.Issue)
		assert.Nil(t, result.Repository.PullRequest)
		assert.Len(t, result.Repository.Issue.Comments.Nodes, 2)
	})

	t.Run("either call failing propagates", func(t *testing.T) {
		mock := mocks.NewForgeAPIClient()
		mock.GetIssueResponse = fixtures.ValidIssue()
		mock.ListIssueCommentsError = errors.New("boom")
		f := fetcher.New(mock, &config.Config{})

		result, err := f.Issue(context.Background(), "acme", "widgets", 7)
		require.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestFetcherUser(t *testing.T) {
	t.Run("resolves display name", func(t *testing.T) {
		mock := mocks.NewForgeAPIClient()
		mock.GetUserResponse = fixtures.ValidUser()
		f := fetcher.New(mock, &config.Config{})

		result := f.User(context.Background(), "octocat")
		require.NotNil(t, result.User.Name)
		assert.Equal(t, "Octo Cat", *result.User.Name)
	})

	t.Run("failure degrades to null name", func(t *testing.T) {
		mock := mocks.NewForgeAPIClient()
		mock.GetUserError = errors.New("boom")
		f := fetcher.New(mock, &config.Config{})

		result := f.User(context.Background(), "octocat")
		require.NotNil(t, result)
		assert.Nil(t, result.User.Name)

		raw, err := json.Marshal(result)
		require.NoError(t, err)
		assert.JSONEq(t, `{"user":{"name":null}}`, string(raw))
	})
}
