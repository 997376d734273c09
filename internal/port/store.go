package port

import (
	"errors"

	"textstats/internal/domain"
)

// ReportStore caches statistics by content hash.
type ReportStore interface {
	GetStats(hash string) (domain.Stats, error)

	PutStats(hash string, stats domain.Stats) error

	PutDoc(doc domain.Document) error

	GetDoc(id string) (domain.Document, error)

	ListDocs() ([]domain.Document, error)

	DeleteDoc(id string) error

	// CountReports returns the number of cached reports.
	CountReports() (int, error)

	Clear() error

	Close() error
}

// ErrNotFound is returned by a ReportStore for unknown documents and hashes.
var ErrNotFound = errors.New("not found")
