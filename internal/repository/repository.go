package repository

import (
	"errors"

	"github.com/waleedthermon/Doctracking/internal/config"
)

// ErrNotFound is returned when a lookup key does not exist in a registry.
var ErrNotFound = errors.New("record not found")

// ErrMissingColumn is returned when an imported workbook lacks a required
// column. It is reported at the import boundary and never aborts the session.
var ErrMissingColumn = errors.New("missing required column")

// Repositories holds one repository per registry workbook.
type Repositories struct {
	Team     *TeamRepository
	Document *DocumentRepository
	Drawing  *DrawingRepository
}

// NewRepositories creates repositories over the configured workbook paths.
// Repositories are stateless handles: every read reloads the workbook from
// disk and every mutation rewrites the full table, so two concurrent writers
// are last-write-wins on the whole file.
func NewRepositories(cfg config.DataConfig) *Repositories {
	return &Repositories{
		Team:     NewTeamRepository(cfg.TeamPath()),
		Document: NewDocumentRepository(cfg.DocumentPath()),
		Drawing:  NewDrawingRepository(cfg.DrawingPath()),
	}
}
