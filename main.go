// Package main provides the entry point for the prfetch CLI tool.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/forgekit/prfetch/internal/logger"
	"github.com/forgekit/prfetch/internal/ui"
	"github.com/forgekit/prfetch/pkg/config"
	"github.com/forgekit/prfetch/pkg/fetcher"
	"github.com/forgekit/prfetch/pkg/forge"
	"github.com/forgekit/prfetch/pkg/format"
	"github.com/forgekit/prfetch/pkg/git"
	"github.com/sgaunet/bullets"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	log      *bullets.Logger

	ownerFlag  string
	repoFlag   string
	numberFlag int
	loginFlag  string
	runIDFlag  int64
	branchFlag string
	yesFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "prfetch",
	Short: "Fetch normalized pull request and issue data from GitHub or Gitea",
	Long: `prfetch fetches pull requests, issues, and users from GitHub or a
Gitea-compatible server and prints them as a single GraphQL-shaped JSON
structure, so consumers written against the GraphQL schema work unchanged
against either REST backend.`,
}

var prCmd = &cobra.Command{
	Use:   "pr",
	Short: "Fetch a pull request with files, commits, comments, and reviews",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runPR()
	},
}

var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Fetch an issue with its comments",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runIssue()
	},
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Resolve a user's display name",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runUser()
	},
}

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Post the standard working comment on an issue or pull request",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runComment()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info",
		"Set log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&ownerFlag, "owner", "",
		"Repository owner (default: derived from the origin remote)")
	rootCmd.PersistentFlags().StringVar(&repoFlag, "repo", "",
		"Repository name (default: derived from the origin remote)")

	prCmd.Flags().IntVarP(&numberFlag, "number", "n", 0, "Pull request number")
	_ = prCmd.MarkFlagRequired("number")

	issueCmd.Flags().IntVarP(&numberFlag, "number", "n", 0, "Issue number")
	_ = issueCmd.MarkFlagRequired("number")

	userCmd.Flags().StringVar(&loginFlag, "login", "", "User login")
	_ = userCmd.MarkFlagRequired("login")

	commentCmd.Flags().IntVarP(&numberFlag, "number", "n", 0, "Issue or pull request number")
	commentCmd.Flags().Int64Var(&runIDFlag, "run-id", 0, "CI job run ID to link")
	commentCmd.Flags().StringVar(&branchFlag, "branch", "", "Branch to link (optional)")
	commentCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Skip the confirmation prompt")
	_ = commentCmd.MarkFlagRequired("number")
	_ = commentCmd.MarkFlagRequired("run-id")

	rootCmd.AddCommand(prCmd, issueCmd, userCmd, commentCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup resolves configuration and builds the fetcher shared by all commands.
func setup() (*config.Config, *fetcher.Fetcher, *forge.Client, error) {
	log = logger.NewLogger(logLevel)

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	log.Debug("Configuration loaded")

	client, err := forge.NewClient(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create forge client: %w", err)
	}

	f := fetcher.New(client, cfg)
	f.SetLogger(log)

	return cfg, f, client, nil
}

// resolveOwnerRepo returns the --owner/--repo flags, falling back to the
// origin remote of the working directory when either is missing.
func resolveOwnerRepo() (string, string, error) {
	if ownerFlag != "" && repoFlag != "" {
		return ownerFlag, repoFlag, nil
	}

	repo, err := git.OpenRepository(".")
	if err != nil {
		return "", "", fmt.Errorf("owner/repo not set and working directory is not a git repository: %w", err)
	}

	owner, name, err := repo.OwnerRepo("origin")
	if err != nil {
		return "", "", fmt.Errorf("failed to derive owner/repo from origin remote: %w", err)
	}

	if ownerFlag != "" {
		owner = ownerFlag
	}
	if repoFlag != "" {
		name = repoFlag
	}

	return owner, name, nil
}

func runPR() error {
	_, f, _, err := setup()
	if err != nil {
		return err
	}

	owner, repo, err := resolveOwnerRepo()
	if err != nil {
		return err
	}

	log.Infof("Fetching pull request %s/%s#%d", owner, repo, numberFlag)
	result, err := f.PullRequest(context.Background(), owner, repo, numberFlag)
	if err != nil {
		return err
	}

	return printJSON(result)
}

func runIssue() error {
	_, f, _, err := setup()
	if err != nil {
		return err
	}

	owner, repo, err := resolveOwnerRepo()
	if err != nil {
		return err
	}

	log.Infof("Fetching issue %s/%s#%d", owner, repo, numberFlag)
	result, err := f.Issue(context.Background(), owner, repo, numberFlag)
	if err != nil {
		return err
	}

	return printJSON(result)
}

func runUser() error {
	_, f, _, err := setup()
	if err != nil {
		return err
	}

	log.Infof("Resolving user %s", loginFlag)
	return printJSON(f.User(context.Background(), loginFlag))
}

func runComment() error {
	cfg, _, client, err := setup()
	if err != nil {
		return err
	}

	owner, repo, err := resolveOwnerRepo()
	if err != nil {
		return err
	}

	jobRunLink := format.JobRunLink(cfg, owner, repo, runIDFlag)
	branchLink := ""
	if branchFlag != "" {
		branchLink = format.BranchLink(cfg, owner, repo, branchFlag)
	}
	body := format.WorkingCommentBody(jobRunLink, branchLink)

	if !yesFlag {
		target := fmt.Sprintf("%s/%s#%d", owner, repo, numberFlag)
		confirmed, err := ui.ConfirmPost(target)
		if err != nil {
			return err
		}
		if !confirmed {
			log.Info("Comment not posted")
			return nil
		}
	}

	comment, err := client.CreateIssueComment(context.Background(), owner, repo, numberFlag, body)
	if err != nil {
		return err
	}

	log.Infof("Posted comment %d", comment.GetID())
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
