package main

import (
	"context"
	"net/http"
	"os"

	"github.com/Scalingo/github-archiver/config"
	"github.com/Scalingo/github-archiver/controller"
	"github.com/Scalingo/github-archiver/logger"
	"github.com/Scalingo/github-archiver/model"
	"github.com/Scalingo/github-archiver/service"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand(nil).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the archiver command. httpClient is the transport used for github, nil for the default one
func newRootCommand(httpClient *http.Client) *cobra.Command {
	var token string

	rootCmd := &cobra.Command{
		Use:   "archiver <account>",
		Short: "Archive GitHub repositories (public and private)",
		Long: `Clone every repository of a GitHub account into Repos_Archive/<language>/<name>
and write an info.json record next to each clone.

Without a token only the public repositories of the account are archived.
With a token, all repositories owned by the token identity are archived, private ones included.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// arguments are valid past this point, run logs its own failures
			cmd.SilenceErrors = true

			return run(cmd.Context(), httpClient, model.ListQuery{Account: args[0], Token: token})
		},
	}

	rootCmd.Flags().StringVar(&token, "token", "", "GitHub token to access private repositories (optional)")

	return rootCmd
}

func run(ctx context.Context, httpClient *http.Client, query model.ListQuery) error {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Error("unable to load configuration")
		return err
	}

	// configure logger
	logger.Setup(*cfg, os.Stdout)

	// setup github client
	// built here and passed to the Github service so tests can use a mocked client
	githubClient, err := service.NewGithubClient(ctx, *cfg, httpClient, query.Token)
	if err != nil {
		log.WithError(err).Error("unable to setup github client")
		return err
	}

	githubService := service.NewGithubService(*cfg, githubClient)
	archiveService := service.NewArchiveService(*cfg, afero.NewOsFs(), service.NewGitClient(cfg.Archive.GitBinary), nil)
	archiveController := controller.NewArchiveController(*cfg, githubService, archiveService)

	if err := archiveController.Run(ctx, query); err != nil {
		runError := model.NewRunError(err)

		log.WithError(err).WithField("code", runError.Code).Error(runError.Message)
		return err
	}

	return nil
}
