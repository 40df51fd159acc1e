package controller

import (
	"context"

	"github.com/Scalingo/github-archiver/config"
	"github.com/Scalingo/github-archiver/model"
	"github.com/Scalingo/github-archiver/service"
	log "github.com/sirupsen/logrus"
)

type ArchiveController interface {
	Run(ctx context.Context, query model.ListQuery) error
}

type archiveController struct {
	githubService  service.GithubService
	archiveService service.ArchiveService
	config         config.Config
}

func NewArchiveController(config config.Config, githubService service.GithubService, archiveService service.ArchiveService) ArchiveController {
	return archiveController{
		githubService:  githubService,
		archiveService: archiveService,
		config:         config,
	}
}

// Run lists the repositories of the account and archives them one by one, in listing order
func (s archiveController) Run(ctx context.Context, query model.ListQuery) error {
	log.Infof("Starting repository archiving for user: %s", query.Account)
	log.Info(query.AccessDescription())

	if err := s.archiveService.EnsureRoot(); err != nil {
		return err
	}

	repos, err := s.githubService.ListRepositories(ctx, query)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"count":       len(repos),
		"archiveRoot": s.config.Archive.RootDirectory,
	}).Debug("repositories to archive")

	for _, repo := range repos {
		if err := s.archiveService.Archive(ctx, repo); err != nil {
			return err
		}
	}

	log.Info("All repositories have been archived.")
	return nil
}
