// Package git reads repository information from the local working copy.
// The CLI uses it to derive owner/repo from the origin remote when they are
// not passed as flags.
package git

import (
	"errors"
	"fmt"
	"strings"

	"github.com/forgekit/prfetch/internal/urlutil"
	"github.com/go-git/go-git/v5"
)

const ownerRepoComponents = 2

var (
	errNoRemoteURL      = errors.New("no URLs found for remote")
	errInvalidRemoteURL = errors.New("could not parse owner/repo from remote URL")
)

// Repository wraps a local git repository.
type Repository struct {
	repo *git.Repository
}

// OpenRepository opens the git repository at path.
func OpenRepository(path string) (*Repository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	return &Repository{repo: repo}, nil
}

// GetRemoteURL returns the first URL of the named remote.
func (r *Repository) GetRemoteURL(remoteName string) (string, error) {
	remote, err := r.repo.Remote(remoteName)
	if err != nil {
		return "", fmt.Errorf("failed to get %s remote: %w", remoteName, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: %s", errNoRemoteURL, remoteName)
	}

	return urls[0], nil
}

// OwnerRepo derives the owner and repository name from the named remote.
// Supports HTTPS, SSH colon, and ssh:// remote URL formats.
func (r *Repository) OwnerRepo(remoteName string) (string, string, error) {
	url, err := r.GetRemoteURL(remoteName)
	if err != nil {
		return "", "", err
	}

	url = strings.TrimSuffix(url, ".git")
	ownerRepo := urlutil.ExtractPathComponents(url, ownerRepoComponents)
	if ownerRepo == "" {
		return "", "", fmt.Errorf("%w: %s", errInvalidRemoteURL, url)
	}

	parts := strings.Split(ownerRepo, "/")
	if len(parts) != ownerRepoComponents {
		return "", "", fmt.Errorf("%w: %s", errInvalidRemoteURL, url)
	}

	return parts[0], parts[1], nil
}
