package fetcher

// GraphQL-shaped output structures. Field names and nesting match the
// GraphQL schema downstream consumers are written against, so the adapter's
// output can be consumed unchanged regardless of which REST API it came from.

// Synthetic identifier prefixes. IDs are derived deterministically from the
// numeric source id, so repeated fetches yield the same identifier.
const (
	commentIDPrefix       = "comment_"
	reviewIDPrefix        = "review_"
	reviewCommentIDPrefix = "review_comment_"
)

// Response is the top-level shape returned by pull-request and issue fetches.
type Response struct {
	Repository Repository `json:"repository"`
}

// Repository holds either a pull request or an issue, never both.
type Repository struct {
	PullRequest *PullRequest `json:"pullRequest,omitempty"`
	Issue       *Issue       `json:"issue,omitempty"`
}

// Author identifies the writer of a pull request, issue, review, or comment.
type Author struct {
	Login string  `json:"login"`
	Name  *string `json:"name,omitempty"`
}

// PullRequest is the normalized pull-request shape.
type PullRequest struct {
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	Author       Author            `json:"author"`
	BaseRefName  string            `json:"baseRefName"`
	HeadRefName  string            `json:"headRefName"`
	HeadRefOID   string            `json:"headRefOid"`
	CreatedAt    string            `json:"createdAt"`
	UpdatedAt    string            `json:"updatedAt"`
	LastEditedAt *string           `json:"lastEditedAt"`
	Additions    int               `json:"additions"`
	Deletions    int               `json:"deletions"`
	State        string            `json:"state"`
	Commits      CommitConnection  `json:"commits"`
	Files        FileConnection    `json:"files"`
	Comments     CommentConnection `json:"comments"`
	Reviews      ReviewConnection  `json:"reviews"`
}

// Issue is the normalized issue shape.
type Issue struct {
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Author    Author            `json:"author"`
	CreatedAt string            `json:"createdAt"`
	UpdatedAt string            `json:"updatedAt"`
	State     string            `json:"state"`
	Comments  CommentConnection `json:"comments"`
}

// CommitConnection mirrors the GraphQL commits connection.
type CommitConnection struct {
	TotalCount int          `json:"totalCount"`
	Nodes      []CommitNode `json:"nodes"`
}

// CommitNode wraps a commit the way the GraphQL schema nests it.
type CommitNode struct {
	Commit Commit `json:"commit"`
}

// Commit is a single commit of a pull request.
type Commit struct {
	OID     string       `json:"oid"`
	Message string       `json:"message"`
	Author  CommitAuthor `json:"author"`
}

// CommitAuthor is the git-level author of a commit.
type CommitAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FileConnection mirrors the GraphQL files connection.
type FileConnection struct {
	Nodes []File `json:"nodes"`
}

// File is a changed file of a pull request.
type File struct {
	Path       string `json:"path"`
	Additions  int    `json:"additions"`
	Deletions  int    `json:"deletions"`
	ChangeType string `json:"changeType"`
}

// CommentConnection mirrors the GraphQL comments connection.
type CommentConnection struct {
	Nodes []Comment `json:"nodes"`
}

// Comment is an issue-level comment.
//
// IsMinimized is always false: the REST APIs this adapter reads do not
// expose the concept, and consumers expect the field to be present.
type Comment struct {
	ID          string `json:"id"`
	DatabaseID  int64  `json:"databaseId"`
	Body        string `json:"body"`
	Author      Author `json:"author"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	IsMinimized bool   `json:"isMinimized"`
}

// ReviewConnection mirrors the GraphQL reviews connection.
type ReviewConnection struct {
	Nodes []Review `json:"nodes"`
}

// Review is a pull-request review with its own line comments.
type Review struct {
	ID          string                  `json:"id"`
	DatabaseID  int64                   `json:"databaseId"`
	Author      Author                  `json:"author"`
	Body        string                  `json:"body"`
	State       string                  `json:"state"`
	SubmittedAt string                  `json:"submittedAt"`
	Comments    ReviewCommentConnection `json:"comments"`
}

// ReviewCommentConnection mirrors the GraphQL review-comments connection.
type ReviewCommentConnection struct {
	Nodes []ReviewComment `json:"nodes"`
}

// ReviewComment is a line comment attached to a review. Line falls back
// from the current line to the original line, else stays null.
type ReviewComment struct {
	ID          string `json:"id"`
	DatabaseID  int64  `json:"databaseId"`
	Body        string `json:"body"`
	Path        string `json:"path"`
	Line        *int   `json:"line"`
	Author      Author `json:"author"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	IsMinimized bool   `json:"isMinimized"`
}

// UserResponse is the shape returned by the user fetch.
type UserResponse struct {
	User UserInfo `json:"user"`
}

// UserInfo carries a user's display name; Name stays null when the lookup
// fails or the user has no display name set.
type UserInfo struct {
	Login string  `json:"login,omitempty"`
	Name  *string `json:"name"`
}
