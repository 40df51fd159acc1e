package model

import (
	"fmt"
	"time"

	"github.com/google/go-github/v66/github"
)

// OtherLanguage is the directory used for repositories without a detected language
const OtherLanguage = "Other"

// Repository is a remote repository as returned by the listing API.
// Description and Language stay nil when github did not send them
type Repository struct {
	Name        string
	CloneURL    string
	Description *string
	Language    *string
	CreatedAt   string
	HTMLURL     string
}

// NewRepository converts a go-github repository, rejecting entries without name, clone url or html url
func NewRepository(r *github.Repository) (Repository, error) {
	if r == nil || r.Name == nil || r.CloneURL == nil || r.HTMLURL == nil {
		return Repository{}, fmt.Errorf("repository %q: %w", r.GetFullName(), ErrInvalidData)
	}

	repository := Repository{
		Name:        *r.Name,
		CloneURL:    *r.CloneURL,
		Description: r.Description,
		Language:    r.Language,
		HTMLURL:     *r.HTMLURL,
	}

	// github sends RFC 3339 UTC timestamps, keep the same textual form
	if r.CreatedAt != nil {
		repository.CreatedAt = r.CreatedAt.UTC().Format(time.RFC3339)
	}

	return repository, nil
}

// LanguageDirectory is the language folder the repository is stored under
func (r Repository) LanguageDirectory() string {
	if r.Language == nil || *r.Language == "" {
		return OtherLanguage
	}

	return *r.Language
}
