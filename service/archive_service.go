package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Scalingo/github-archiver/config"
	"github.com/Scalingo/github-archiver/model"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// gitMarker is the directory git creates at the root of a clone
const gitMarker = ".git"

type ArchiveService interface {
	EnsureRoot() error
	Archive(ctx context.Context, repo model.Repository) error
}

type archiveService struct {
	fs        afero.Fs
	vcsClient VersionControlClient
	now       func() time.Time
	config    config.Config
}

// NewArchiveService stores repositories under config.Archive.RootDirectory on fs.
// now is used for archived_at, time.Now when nil
func NewArchiveService(config config.Config, fs afero.Fs, vcsClient VersionControlClient, now func() time.Time) ArchiveService {
	if now == nil {
		now = time.Now
	}

	return archiveService{
		fs:        fs,
		vcsClient: vcsClient,
		now:       now,
		config:    config,
	}
}

// EnsureRoot creates the archive root and its parents, nothing happens if it already exists
func (s archiveService) EnsureRoot() error {
	if err := s.fs.MkdirAll(s.config.Archive.RootDirectory, 0o755); err != nil {
		return fmt.Errorf("create archive root %s: %w: %w", s.config.Archive.RootDirectory, model.ErrFilesystem, err)
	}

	return nil
}

// destination is <root>/<language or Other>/<name>
func (s archiveService) destination(repo model.Repository) string {
	return filepath.Join(s.config.Archive.RootDirectory, repo.LanguageDirectory(), repo.Name)
}

// Archive clones the repository unless a clone is already there, then always rewrites the record file.
// A failed clone is only reported, the record is written anyway
func (s archiveService) Archive(ctx context.Context, repo model.Repository) error {
	destination := s.destination(repo)

	if err := s.fs.MkdirAll(destination, 0o755); err != nil {
		return fmt.Errorf("create %s: %w: %w", destination, model.ErrFilesystem, err)
	}

	cloned, err := afero.Exists(s.fs, filepath.Join(destination, gitMarker))
	if err != nil {
		return fmt.Errorf("check clone in %s: %w: %w", destination, model.ErrFilesystem, err)
	}

	if cloned {
		log.WithFields(log.Fields{
			"repository":  repo.Name,
			"destination": destination,
		}).Debug("repository already cloned, skipping clone")
	} else {
		log.Infof("Cloning %s...", repo.Name)

		if err := s.vcsClient.Clone(ctx, repo.CloneURL, destination); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"repository":  repo.Name,
				"destination": destination,
			}).Warning("clone failed, archive record is still written")
		}
	}

	return s.writeRecord(destination, model.NewArchiveRecord(repo, s.now()))
}

func (s archiveService) writeRecord(destination string, record model.ArchiveRecord) error {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")

	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("encode archive record of %s: %w", record.Name, err)
	}

	recordPath := filepath.Join(destination, s.recordFileName())

	if err := afero.WriteFile(s.fs, recordPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w: %w", recordPath, model.ErrFilesystem, err)
	}

	return nil
}

func (s archiveService) recordFileName() string {
	if s.config.Archive.RecordFileName == "" {
		return "info.json"
	}

	return s.config.Archive.RecordFileName
}
