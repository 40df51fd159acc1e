package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/Scalingo/github-archiver/config"
	"github.com/Scalingo/github-archiver/model"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type fakeGithubService struct {
	repos   []model.Repository
	err     error
	queries []model.ListQuery
}

func (f *fakeGithubService) ListRepositories(_ context.Context, query model.ListQuery) ([]model.Repository, error) {
	f.queries = append(f.queries, query)
	return f.repos, f.err
}

type fakeArchiveService struct {
	steps      []string
	rootErr    error
	archiveErr map[string]error
}

func (f *fakeArchiveService) EnsureRoot() error {
	f.steps = append(f.steps, "root")
	return f.rootErr
}

func (f *fakeArchiveService) Archive(_ context.Context, repo model.Repository) error {
	f.steps = append(f.steps, "archive:"+repo.Name)
	return f.archiveErr[repo.Name]
}

func messages(hook *test.Hook) []string {
	var msgs []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == log.InfoLevel {
			msgs = append(msgs, entry.Message)
		}
	}

	return msgs
}

func TestRun(t *testing.T) {
	tests := []struct {
		name             string
		query            model.ListQuery
		repos            []model.Repository
		listErr          error
		rootErr          error
		archiveErr       map[string]error
		expectedSteps    []string
		expectedMessages []string
		expectedErr      error
	}{
		{
			name:          "No repositories",
			query:         model.ListQuery{Account: "octocat"},
			expectedSteps: []string{"root"},
			expectedMessages: []string{
				"Starting repository archiving for user: octocat",
				"Fetching public repositories only",
				"All repositories have been archived.",
			},
		},
		{
			name:  "Repositories archived in listing order with token",
			query: model.ListQuery{Account: "octocat", Token: "secret"},
			repos: []model.Repository{
				{Name: "b"},
				{Name: "a"},
				{Name: "c"},
			},
			expectedSteps: []string{"root", "archive:b", "archive:a", "archive:c"},
			expectedMessages: []string{
				"Starting repository archiving for user: octocat",
				"Access to private repositories enabled",
				"All repositories have been archived.",
			},
		},
		{
			name:          "Archive root cannot be created",
			query:         model.ListQuery{Account: "octocat"},
			rootErr:       model.ErrFilesystem,
			expectedSteps: []string{"root"},
			expectedMessages: []string{
				"Starting repository archiving for user: octocat",
				"Fetching public repositories only",
			},
			expectedErr: model.ErrFilesystem,
		},
		{
			name:          "Invalid repository in listing",
			query:         model.ListQuery{Account: "octocat"},
			listErr:       model.ErrInvalidData,
			expectedSteps: []string{"root"},
			expectedMessages: []string{
				"Starting repository archiving for user: octocat",
				"Fetching public repositories only",
			},
			expectedErr: model.ErrInvalidData,
		},
		{
			name:          "Filesystem error stops the run",
			query:         model.ListQuery{Account: "octocat"},
			repos:         []model.Repository{{Name: "a"}, {Name: "b"}, {Name: "c"}},
			archiveErr:    map[string]error{"b": model.ErrFilesystem},
			expectedSteps: []string{"root", "archive:a", "archive:b"},
			expectedMessages: []string{
				"Starting repository archiving for user: octocat",
				"Fetching public repositories only",
			},
			expectedErr: model.ErrFilesystem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := test.NewGlobal()
			defer hook.Reset()

			githubService := &fakeGithubService{repos: tt.repos, err: tt.listErr}
			archiveService := &fakeArchiveService{rootErr: tt.rootErr, archiveErr: tt.archiveErr}

			ctrl := NewArchiveController(*config.GetDefault(), githubService, archiveService)
			err := ctrl.Run(context.Background(), tt.query)

			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr))
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.expectedSteps, archiveService.steps)
			assert.Equal(t, tt.expectedMessages, messages(hook))

			if tt.rootErr == nil {
				assert.Equal(t, []model.ListQuery{tt.query}, githubService.queries)
			} else {
				assert.Empty(t, githubService.queries)
			}
		})
	}
}
