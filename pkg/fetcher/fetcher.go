// Package fetcher fetches pull requests, issues, and users over the forge
// REST API and reassembles the payloads into the GraphQL-shaped structures
// defined in types.go.
package fetcher

import (
	"context"
	"fmt"
	"sync"

	"github.com/forgekit/prfetch/internal/logger"
	"github.com/forgekit/prfetch/pkg/config"
	"github.com/forgekit/prfetch/pkg/forge"
	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/bullets"
)

// prBatchSize is the number of independent calls issued for a pull request.
const prBatchSize = 5

// Fetcher issues REST calls through an [forge.APIClient] and normalizes the
// results. It holds no mutable state; every fetch is independent.
type Fetcher struct {
	client forge.APIClient
	cfg    *config.Config
	log    *bullets.Logger
}

// New creates a Fetcher. Logging is silent until SetLogger is called.
func New(client forge.APIClient, cfg *config.Config) *Fetcher {
	return &Fetcher{
		client: client,
		cfg:    cfg,
		log:    logger.NoLogger(),
	}
}

// SetLogger sets the logger used for degrade-and-continue warnings.
func (f *Fetcher) SetLogger(log *bullets.Logger) {
	f.log = log
}

// PullRequest fetches a pull request and everything attached to it: changed
// files, issue-style comments, commits, and reviews with their line
// comments. The five top-level calls run concurrently and are
// all-or-nothing; a failed per-review comment fetch degrades to an empty
// comment list for that review only.
func (f *Fetcher) PullRequest(ctx context.Context, owner, repo string, number int) (*Response, error) {
	var (
		pr       *github.PullRequest
		files    []*github.CommitFile
		comments []*github.IssueComment
		commits  []*github.RepositoryCommit
		reviews  []*github.PullRequestReview
	)

	errChan := make(chan error, prBatchSize)
	var wg sync.WaitGroup
	wg.Add(prBatchSize)

	go func() {
		defer wg.Done()
		var err error
		pr, err = f.client.GetPullRequest(ctx, owner, repo, number)
		errChan <- err
	}()
	go func() {
		defer wg.Done()
		var err error
		files, err = f.client.ListPullRequestFiles(ctx, owner, repo, number)
		errChan <- err
	}()
	go func() {
		defer wg.Done()
		var err error
		comments, err = f.client.ListIssueComments(ctx, owner, repo, number)
		errChan <- err
	}()
	go func() {
		defer wg.Done()
		var err error
		commits, err = f.client.ListPullRequestCommits(ctx, owner, repo, number)
		errChan <- err
	}()
	go func() {
		defer wg.Done()
		var err error
		reviews, err = f.client.ListReviews(ctx, owner, repo, number)
		errChan <- err
	}()

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, fmt.Errorf("failed to fetch pull request %s/%s#%d: %w", owner, repo, number, err)
		}
	}

	reviewComments := f.fetchReviewComments(ctx, owner, repo, number, reviews)

	return &Response{
		Repository: Repository{
			PullRequest: NewPullRequest(pr, commits, files, comments, reviews, reviewComments),
		},
	}, nil
}

// fetchReviewComments fans out one comment fetch per review, concurrently.
// Results are index-aligned with reviews so output order matches input
// order. A failed fetch is logged at warn level and leaves a nil entry,
// which normalizes to an empty comment list; it never fails the caller.
func (f *Fetcher) fetchReviewComments(
	ctx context.Context,
	owner, repo string,
	number int,
	reviews []*github.PullRequestReview,
) [][]*github.PullRequestComment {
	type reviewResult struct {
		index    int
		comments []*github.PullRequestComment
		err      error
	}

	resultChan := make(chan reviewResult, len(reviews))
	var wg sync.WaitGroup

	for i, review := range reviews {
		wg.Add(1)
		go func(index int, reviewID int64) {
			defer wg.Done()
			comments, err := f.listReviewComments(ctx, owner, repo, number, reviewID)
			resultChan <- reviewResult{
				index:    index,
				comments: comments,
				err:      err,
			}
		}(i, review.GetID())
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	byReview := make([][]*github.PullRequestComment, len(reviews))
	for result := range resultChan {
		if result.err != nil {
			f.log.Warnf("Failed to fetch comments for review %d: %v",
				reviews[result.index].GetID(), result.err)
			continue
		}
		byReview[result.index] = result.comments
	}

	return byReview
}

// listReviewComments picks the endpoint for the configured platform: the
// typed GitHub endpoint, or the generic Gitea-compatible request.
func (f *Fetcher) listReviewComments(ctx context.Context, owner, repo string, number int, reviewID int64) ([]*github.PullRequestComment, error) {
	if f.cfg.UseGitea {
		return f.client.ListReviewCommentsRaw(ctx, owner, repo, number, reviewID)
	}
	return f.client.ListReviewComments(ctx, owner, repo, number, reviewID)
}

// Issue fetches an issue and its comments. The two calls run concurrently
// and are all-or-nothing.
func (f *Fetcher) Issue(ctx context.Context, owner, repo string, number int) (*Response, error) {
	var (
		issue    *github.Issue
		comments []*github.IssueComment
	)

	errChan := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		var err error
		issue, err = f.client.GetIssue(ctx, owner, repo, number)
		errChan <- err
	}()
	go func() {
		defer wg.Done()
		var err error
		comments, err = f.client.ListIssueComments(ctx, owner, repo, number)
		errChan <- err
	}()

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, fmt.Errorf("failed to fetch issue %s/%s#%d: %w", owner, repo, number, err)
		}
	}

	return &Response{
		Repository: Repository{
			Issue: NewIssue(issue, comments),
		},
	}, nil
}

// User resolves a user's display name. A failed lookup is logged at warn
// level and yields a null name; this operation never fails its caller.
func (f *Fetcher) User(ctx context.Context, login string) *UserResponse {
	user, err := f.client.GetUser(ctx, login)
	if err != nil {
		f.log.Warnf("Failed to fetch user %s: %v", login, err)
		return &UserResponse{User: UserInfo{Name: nil}}
	}

	return &UserResponse{User: NewUserInfo(user)}
}
