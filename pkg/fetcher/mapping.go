package fetcher

// Pure mapping functions from go-github REST payloads to the normalized
// shapes in types.go. Mapping is kept separate from fetch orchestration so
// it can be tested without a client.

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v69/github"
)

// changeTypes maps REST file statuses to normalized change types.
// Unrecognized statuses pass through upper-cased.
var changeTypes = map[string]string{
	"added":    "ADDED",
	"modified": "MODIFIED",
	"removed":  "DELETED",
	"renamed":  "RENAMED",
	"copied":   "COPIED",
	"changed":  "MODIFIED",
}

// ChangeType normalizes a REST file status to the GraphQL change type.
func ChangeType(status string) string {
	if mapped, ok := changeTypes[status]; ok {
		return mapped
	}
	return strings.ToUpper(status)
}

// NewPullRequest assembles the normalized pull request from the REST
// payloads. reviewComments holds one slice per review, index-aligned with
// reviews; a nil entry yields an empty comment list for that review.
func NewPullRequest(
	pr *github.PullRequest,
	commits []*github.RepositoryCommit,
	files []*github.CommitFile,
	comments []*github.IssueComment,
	reviews []*github.PullRequestReview,
	reviewComments [][]*github.PullRequestComment,
) *PullRequest {
	state := strings.ToUpper(pr.GetState())
	if pr.GetMerged() {
		state = "MERGED"
	}

	commitNodes := make([]CommitNode, 0, len(commits))
	for _, c := range commits {
		commitNodes = append(commitNodes, NewCommitNode(c))
	}

	fileNodes := make([]File, 0, len(files))
	for _, f := range files {
		fileNodes = append(fileNodes, NewFile(f))
	}

	commentNodes := make([]Comment, 0, len(comments))
	for _, c := range comments {
		commentNodes = append(commentNodes, NewComment(c))
	}

	reviewNodes := make([]Review, 0, len(reviews))
	for i, r := range reviews {
		var rc []*github.PullRequestComment
		if i < len(reviewComments) {
			rc = reviewComments[i]
		}
		reviewNodes = append(reviewNodes, NewReview(r, rc))
	}

	return &PullRequest{
		Title:        pr.GetTitle(),
		Body:         pr.GetBody(),
		Author:       newAuthor(pr.GetUser()),
		BaseRefName:  pr.GetBase().GetRef(),
		HeadRefName:  pr.GetHead().GetRef(),
		HeadRefOID:   pr.GetHead().GetSHA(),
		CreatedAt:    formatTime(pr.GetCreatedAt()),
		UpdatedAt:    formatTime(pr.GetUpdatedAt()),
		LastEditedAt: nil, // not exposed by the REST APIs
		Additions:    pr.GetAdditions(),
		Deletions:    pr.GetDeletions(),
		State:        state,
		Commits: CommitConnection{
			TotalCount: len(commitNodes),
			Nodes:      commitNodes,
		},
		Files:    FileConnection{Nodes: fileNodes},
		Comments: CommentConnection{Nodes: commentNodes},
		Reviews:  ReviewConnection{Nodes: reviewNodes},
	}
}

// NewIssue assembles the normalized issue from the REST payloads.
func NewIssue(issue *github.Issue, comments []*github.IssueComment) *Issue {
	commentNodes := make([]Comment, 0, len(comments))
	for _, c := range comments {
		commentNodes = append(commentNodes, NewComment(c))
	}

	return &Issue{
		Title:     issue.GetTitle(),
		Body:      issue.GetBody(),
		Author:    newAuthor(issue.GetUser()),
		CreatedAt: formatTime(issue.GetCreatedAt()),
		UpdatedAt: formatTime(issue.GetUpdatedAt()),
		State:     strings.ToUpper(issue.GetState()),
		Comments:  CommentConnection{Nodes: commentNodes},
	}
}

// NewComment normalizes an issue-level comment.
func NewComment(c *github.IssueComment) Comment {
	return Comment{
		ID:          fmt.Sprintf("%s%d", commentIDPrefix, c.GetID()),
		DatabaseID:  c.GetID(),
		Body:        c.GetBody(),
		Author:      newAuthor(c.GetUser()),
		CreatedAt:   formatTime(c.GetCreatedAt()),
		UpdatedAt:   formatTime(c.GetUpdatedAt()),
		IsMinimized: false,
	}
}

// NewReview normalizes a review together with its line comments.
// comments may be nil; the review then carries an empty comment list.
func NewReview(r *github.PullRequestReview, comments []*github.PullRequestComment) Review {
	commentNodes := make([]ReviewComment, 0, len(comments))
	for _, c := range comments {
		commentNodes = append(commentNodes, NewReviewComment(c))
	}

	return Review{
		ID:          fmt.Sprintf("%s%d", reviewIDPrefix, r.GetID()),
		DatabaseID:  r.GetID(),
		Author:      newAuthor(r.GetUser()),
		Body:        r.GetBody(),
		State:       strings.ToUpper(r.GetState()),
		SubmittedAt: formatTime(r.GetSubmittedAt()),
		Comments:    ReviewCommentConnection{Nodes: commentNodes},
	}
}

// NewReviewComment normalizes a review line comment. The line number falls
// back from the current line to the original line, else stays null.
func NewReviewComment(c *github.PullRequestComment) ReviewComment {
	var line *int
	switch {
	case c.Line != nil:
		line = c.Line
	case c.OriginalLine != nil:
		line = c.OriginalLine
	}

	return ReviewComment{
		ID:          fmt.Sprintf("%s%d", reviewCommentIDPrefix, c.GetID()),
		DatabaseID:  c.GetID(),
		Body:        c.GetBody(),
		Path:        c.GetPath(),
		Line:        line,
		Author:      newAuthor(c.GetUser()),
		CreatedAt:   formatTime(c.GetCreatedAt()),
		UpdatedAt:   formatTime(c.GetUpdatedAt()),
		IsMinimized: false,
	}
}

// NewFile normalizes a changed file.
func NewFile(f *github.CommitFile) File {
	return File{
		Path:       f.GetFilename(),
		Additions:  f.GetAdditions(),
		Deletions:  f.GetDeletions(),
		ChangeType: ChangeType(f.GetStatus()),
	}
}

// NewCommitNode normalizes a commit.
func NewCommitNode(c *github.RepositoryCommit) CommitNode {
	return CommitNode{
		Commit: Commit{
			OID:     c.GetSHA(),
			Message: c.GetCommit().GetMessage(),
			Author: CommitAuthor{
				Name:  c.GetCommit().GetAuthor().GetName(),
				Email: c.GetCommit().GetAuthor().GetEmail(),
			},
		},
	}
}

// NewUserInfo normalizes a user lookup result.
func NewUserInfo(u *github.User) UserInfo {
	info := UserInfo{Login: u.GetLogin()}
	if u != nil {
		info.Name = u.Name
	}
	return info
}

func newAuthor(u *github.User) Author {
	a := Author{Login: u.GetLogin()}
	if u != nil {
		a.Name = u.Name
	}
	return a
}

func formatTime(ts github.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(time.RFC3339)
}
