package git_test

import (
	"testing"

	prgit "github.com/forgekit/prfetch/pkg/git"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepoWithRemote creates a bare-minimum repository in a temp dir with an
// origin remote pointing at the given URL.
func initRepoWithRemote(t *testing.T, remoteURL string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = repo.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{remoteURL},
	})
	require.NoError(t, err)

	return dir
}

func TestOpenRepository(t *testing.T) {
	t.Run("opens an existing repository", func(t *testing.T) {
		dir := initRepoWithRemote(t, "https://github.com/acme/widgets.git")

		repo, err := prgit.OpenRepository(dir)
		require.NoError(t, err)
		assert.NotNil(t, repo)
	})

	t.Run("fails on a non-repository", func(t *testing.T) {
		_, err := prgit.OpenRepository(t.TempDir())
		require.Error(t, err)
	})
}

func TestGetRemoteURL(t *testing.T) {
	dir := initRepoWithRemote(t, "git@github.com:acme/widgets.git")

	repo, err := prgit.OpenRepository(dir)
	require.NoError(t, err)

	url, err := repo.GetRemoteURL("origin")
	require.NoError(t, err)
	assert.Equal(t, "git@github.com:acme/widgets.git", url)

	_, err = repo.GetRemoteURL("upstream")
	require.Error(t, err)
}

func TestOwnerRepo(t *testing.T) {
	tests := []struct {
		name      string
		remoteURL string
		wantOwner string
		wantRepo  string
	}{
		{
			name:      "HTTPS with .git suffix",
			remoteURL: "https://github.com/acme/widgets.git",
			wantOwner: "acme",
			wantRepo:  "widgets",
		},
		{
			name:      "HTTPS gitea host",
			remoteURL: "https://gitea.example.com/acme/widgets",
			wantOwner: "acme",
			wantRepo:  "widgets",
		},
		{
			name:      "SSH colon format",
			remoteURL: "git@gitea.example.com:acme/widgets.git",
			wantOwner: "acme",
			wantRepo:  "widgets",
		},
		{
			name:      "SSH protocol format",
			remoteURL: "ssh://git@github.com/acme/widgets.git",
			wantOwner: "acme",
			wantRepo:  "widgets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := initRepoWithRemote(t, tt.remoteURL)

			repo, err := prgit.OpenRepository(dir)
			require.NoError(t, err)

			owner, name, err := repo.OwnerRepo("origin")
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, name)
		})
	}
}
