package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/smellscan/smellscan/internal/git"
)

// Metadata describes one scan run for report headers.
type Metadata struct {
	Title        string
	RunID        string
	Time         time.Time
	SourceFolder string
	Repository   *git.RepositoryMetadata
}

// NewMetadata stamps a run with a fresh ID and the current UTC time. The
// repository metadata may be nil when the source folder is not inside a git
// repository.
func NewMetadata(title, sourceFolder string, repository *git.RepositoryMetadata) Metadata {
	return Metadata{
		Title:        title,
		RunID:        uuid.NewString(),
		Time:         time.Now().UTC(),
		SourceFolder: sourceFolder,
		Repository:   repository,
	}
}
