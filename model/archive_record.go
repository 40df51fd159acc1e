package model

import "time"

// ArchivedAtLayout is the local date format written in archived_at
const ArchivedAtLayout = "2006-01-02"

// ArchiveRecord is the provenance file stored next to each clone.
// Field order is the order of keys in the written file
type ArchiveRecord struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	CreatedAt   string  `json:"created_at"`
	ArchivedAt  string  `json:"archived_at"`
	Github      string  `json:"github"`
}

func NewArchiveRecord(r Repository, archivedAt time.Time) ArchiveRecord {
	return ArchiveRecord{
		Name:        r.Name,
		Description: r.Description,
		Language:    r.Language,
		CreatedAt:   r.CreatedAt,
		ArchivedAt:  archivedAt.Local().Format(ArchivedAtLayout),
		Github:      r.HTMLURL,
	}
}
