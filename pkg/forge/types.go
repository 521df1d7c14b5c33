package forge

import (
	"github.com/google/go-github/v69/github"
)

// Constants for forge API operations.
const (
	// maxItemsPerPage caps every list call at a single page of 100 items.
	// Pagination beyond the first page is out of scope for this adapter.
	maxItemsPerPage = 100
)

// Client wraps a go-github client pointed at either the GitHub API or a
// Gitea-compatible API, depending on the resolved configuration.
type Client struct {
	client *github.Client
}

// Raw returns the underlying go-github client for callers that need
// endpoints this wrapper does not expose.
func (c *Client) Raw() *github.Client {
	return c.client
}
