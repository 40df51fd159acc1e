package service

import (
	"context"
	"net/http"

	"github.com/Scalingo/github-archiver/config"
	"github.com/google/go-github/v66/github"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// NewGithubClient builds the go-github client used by the lister.
// httpClient can be nil, tests pass a mocked one. When token is set every request carries
// "Authorization: token <token>", anonymous clients never send the header
func NewGithubClient(ctx context.Context, cfg config.Config, httpClient *http.Client, token string) (*github.Client, error) {
	if token != "" {
		log.Debug("will setup github client with authorization token")

		// oauth2 keeps non standard token types as-is in the Authorization header
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "token"})

		if httpClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		}

		httpClient = oauth2.NewClient(ctx, ts)
	}

	githubClient := github.NewClient(httpClient)

	if cfg.Github.BaseURL != "" {
		log.WithField("baseURL", cfg.Github.BaseURL).Debug("using github enterprise api")
		return githubClient.WithEnterpriseURLs(cfg.Github.BaseURL, cfg.Github.BaseURL)
	}

	return githubClient, nil
}
