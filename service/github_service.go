package service

import (
	"context"

	"github.com/Scalingo/github-archiver/config"
	"github.com/Scalingo/github-archiver/model"
	"github.com/google/go-github/v66/github"
	log "github.com/sirupsen/logrus"
)

type GithubService interface {
	ListRepositories(ctx context.Context, query model.ListQuery) ([]model.Repository, error)
}

type githubService struct {
	githubClient *github.Client
	config       config.Config
}

func NewGithubService(config config.Config, githubClient *github.Client) GithubService {
	return githubService{
		githubClient: githubClient,
		config:       config,
	}
}

// ListRepositories walks the repository pages one after the other until an empty page.
// A failed page stops the walk and the repositories collected so far are returned without error.
// Only an invalid repository in a page is returned as an error
func (s githubService) ListRepositories(ctx context.Context, query model.ListQuery) ([]model.Repository, error) {
	log.WithFields(log.Fields{
		"account":       query.Account,
		"authenticated": query.Authenticated(),
		"perPage":       s.perPage(),
	}).Debug("list repositories from github")

	repositories := make([]model.Repository, 0)

	for page := 1; ; page++ {
		repos, resp, err := s.listPage(ctx, query, page)

		if err != nil {
			status := 0
			if resp != nil {
				status = resp.StatusCode
			}

			log.WithError(err).WithFields(log.Fields{
				"status": status,
				"page":   page,
			}).Errorf("error connecting to github: %d", status)

			break
		}

		// github answers an empty array once past the last page
		if len(repos) == 0 {
			break
		}

		for _, r := range repos {
			repository, err := model.NewRepository(r)

			if err != nil {
				log.WithFields(log.Fields{
					"repositoryID": r.GetID(),
					"page":         page,
				}).Debug("repository found with invalid information")

				return nil, err
			}

			repositories = append(repositories, repository)
		}

		log.WithFields(log.Fields{
			"page":  page,
			"count": len(repos),
		}).Debug("repositories page fetched")
	}

	return repositories, nil
}

func (s githubService) listPage(ctx context.Context, query model.ListQuery, page int) ([]*github.Repository, *github.Response, error) {
	listOptions := github.ListOptions{
		Page:    page,
		PerPage: s.perPage(),
	}

	if query.Authenticated() {
		return s.githubClient.Repositories.ListByAuthenticatedUser(ctx, &github.RepositoryListByAuthenticatedUserOptions{
			Affiliation: "owner",
			ListOptions: listOptions,
		})
	}

	return s.githubClient.Repositories.ListByUser(ctx, query.Account, &github.RepositoryListByUserOptions{
		ListOptions: listOptions,
	})
}

func (s githubService) perPage() int {
	if s.config.Github.PerPage <= 0 {
		return 100
	}

	return s.config.Github.PerPage
}

