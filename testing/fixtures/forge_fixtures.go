// Package fixtures provides common test data structures for testing.
package fixtures

import (
	"time"

	"github.com/google/go-github/v69/github"
)

// Test constants for forge fixtures.
const (
	defaultPRNumber = 42
	reviewIDOne     = int64(2001)
	reviewIDTwo     = int64(2002)
)

func timestamp(s string) github.Timestamp {
	t, _ := time.Parse(time.RFC3339, s)
	return github.Timestamp{Time: t}
}

// ValidPullRequest returns an open pull request with the fields the
// normalizer reads populated.
func ValidPullRequest() *github.PullRequest {
	created := timestamp("2024-03-01T10:00:00Z")
	updated := timestamp("2024-03-02T11:30:00Z")
	return &github.PullRequest{
		Number:    github.Ptr(defaultPRNumber),
		Title:     github.Ptr("Add request normalization"),
		Body:      github.Ptr("Normalizes REST payloads into the GraphQL shape."),
		State:     github.Ptr("open"),
		Merged:    github.Ptr(false),
		Additions: github.Ptr(120),
		Deletions: github.Ptr(15),
		CreatedAt: &created,
		UpdatedAt: &updated,
		User: &github.User{
			Login: github.Ptr("octocat"),
		},
		Base: &github.PullRequestBranch{
			Ref: github.Ptr("main"),
		},
		Head: &github.PullRequestBranch{
			Ref: github.Ptr("feature/normalize"),
			SHA: github.Ptr("abc123def456"),
		},
	}
}

// ValidCommitFiles returns two changed files with different statuses.
func ValidCommitFiles() []*github.CommitFile {
	return []*github.CommitFile{
		{
			Filename:  github.Ptr("pkg/fetcher/fetcher.go"),
			Additions: github.Ptr(100),
			Deletions: github.Ptr(10),
			Status:    github.Ptr("modified"),
		},
		{
			Filename:  github.Ptr("pkg/fetcher/types.go"),
			Additions: github.Ptr(20),
			Deletions: github.Ptr(5),
			Status:    github.Ptr("added"),
		},
	}
}

// ValidIssueComments returns two issue-level comments in order.
func ValidIssueComments() []*github.IssueComment {
	first := timestamp("2024-03-01T12:00:00Z")
	second := timestamp("2024-03-01T13:00:00Z")
	return []*github.IssueComment{
		{
			ID:        github.Ptr(int64(1001)),
			Body:      github.Ptr("Looks reasonable."),
			User:      &github.User{Login: github.Ptr("reviewer-one")},
			CreatedAt: &first,
			UpdatedAt: &first,
		},
		{
			ID:        github.Ptr(int64(1002)),
			Body:      github.Ptr("Please add tests."),
			User:      &github.User{Login: github.Ptr("reviewer-two")},
			CreatedAt: &second,
			UpdatedAt: &second,
		},
	}
}

// ValidCommits returns two commits in order.
func ValidCommits() []*github.RepositoryCommit {
	return []*github.RepositoryCommit{
		{
			SHA: github.Ptr("abc123def456"),
			Commit: &github.Commit{
				Message: github.Ptr("feat: add fetcher"),
				Author: &github.CommitAuthor{
					Name:  github.Ptr("Octo Cat"),
					Email: github.Ptr("octocat@example.com"),
				},
			},
		},
		{
			SHA: github.Ptr("789fedcba321"),
			Commit: &github.Commit{
				Message: github.Ptr("test: cover mapping"),
				Author: &github.CommitAuthor{
					Name:  github.Ptr("Octo Cat"),
					Email: github.Ptr("octocat@example.com"),
				},
			},
		},
	}
}

// ValidReviews returns two reviews in order, with IDs matching the
// review-comment fixtures.
func ValidReviews() []*github.PullRequestReview {
	first := timestamp("2024-03-02T09:00:00Z")
	second := timestamp("2024-03-02T10:00:00Z")
	return []*github.PullRequestReview{
		{
			ID:          github.Ptr(reviewIDOne),
			Body:        github.Ptr("A few comments inline."),
			State:       github.Ptr("CHANGES_REQUESTED"),
			User:        &github.User{Login: github.Ptr("reviewer-one")},
			SubmittedAt: &first,
		},
		{
			ID:          github.Ptr(reviewIDTwo),
			Body:        github.Ptr(""),
			State:       github.Ptr("APPROVED"),
			User:        &github.User{Login: github.Ptr("reviewer-two")},
			SubmittedAt: &second,
		},
	}
}

// ValidReviewComments returns line comments for the first fixture review.
func ValidReviewComments() []*github.PullRequestComment {
	created := timestamp("2024-03-02T09:05:00Z")
	return []*github.PullRequestComment{
		{
			ID:        github.Ptr(int64(3001)),
			Body:      github.Ptr("This branch is dead code."),
			Path:      github.Ptr("pkg/fetcher/fetcher.go"),
			Line:      github.Ptr(27),
			User:      &github.User{Login: github.Ptr("reviewer-one")},
			CreatedAt: &created,
			UpdatedAt: &created,
		},
	}
}

// ValidIssue returns an open issue with the fields the normalizer reads.
func ValidIssue() *github.Issue {
	created := timestamp("2024-02-20T08:00:00Z")
	updated := timestamp("2024-02-21T08:00:00Z")
	return &github.Issue{
		Number:    github.Ptr(7),
		Title:     github.Ptr("Normalize review comments"),
		Body:      github.Ptr("Review comments should carry path and line."),
		State:     github.Ptr("open"),
		User:      &github.User{Login: github.Ptr("octocat")},
		CreatedAt: &created,
		UpdatedAt: &updated,
	}
}

// ValidUser returns a user with a display name set.
func ValidUser() *github.User {
	return &github.User{
		Login: github.Ptr("octocat"),
		Name:  github.Ptr("Octo Cat"),
	}
}
