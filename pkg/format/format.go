// Package format builds the markdown fragments posted as bot comments:
// job-run links, branch links, and the standard working-comment body.
//
// All functions are pure string builders over their inputs and the resolved
// [config.Config]; they perform no I/O and have no failure modes.
package format

import (
	"fmt"
	"strings"

	"github.com/forgekit/prfetch/pkg/config"
)

// spinnerMarkup is the fixed status-spinner image embedded in working comments.
const spinnerMarkup = `<img src="https://github.com/user-attachments/assets/5ac382c7-e004-429b-8e35-7feb3e8f9c6f" width="14px" height="14px" style="vertical-align: middle; margin-left: 4px;" />`

// JobRunLink returns a markdown link to the CI job run for the repository.
// Action-run URLs share the same path on both platforms, so there is no
// platform branching here.
func JobRunLink(cfg *config.Config, owner, repo string, runID int64) string {
	return fmt.Sprintf("[View job run](%s/%s/%s/actions/runs/%d)",
		cfg.ServerBaseURL, owner, repo, runID)
}

// BranchPathSegment returns the URL path segment used to browse a branch.
// Any host other than github.com is assumed to be Gitea-compatible and uses
// "src/branch"; github.com uses "tree". Note this inspects the server URL
// rather than the UseGitea flag, unlike [BranchLink].
func BranchPathSegment(cfg *config.Config) string {
	if strings.Contains(cfg.ServerBaseURL, "github.com") {
		return "tree"
	}
	return "src/branch"
}

// BranchURL returns the browser URL for a branch on the configured server.
func BranchURL(cfg *config.Config, owner, repo, branchName string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s",
		cfg.ServerBaseURL, owner, repo, BranchPathSegment(cfg), branchName)
}

// BranchLink returns a newline-prefixed markdown link to a branch. On Gitea
// it links through [BranchURL]; otherwise it links directly to github.com.
func BranchLink(cfg *config.Config, owner, repo, branchName string) string {
	if cfg.UseGitea {
		return fmt.Sprintf("\n[View branch](%s)", BranchURL(cfg, owner, repo, branchName))
	}
	return fmt.Sprintf("\n[View branch](https://github.com/%s/%s/tree/%s)",
		owner, repo, branchName)
}

// WorkingCommentBody builds the standard "working" comment: a status line
// with the spinner image, a placeholder sentence, then the job-run link
// followed immediately by the branch link. branchLink may be empty; when
// present it carries its own leading newline.
func WorkingCommentBody(jobRunLink, branchLink string) string {
	return fmt.Sprintf("Working on it… %s\n\nI'll analyze this and get back to you.\n\n%s%s",
		spinnerMarkup, jobRunLink, branchLink)
}
