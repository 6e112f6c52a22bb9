package service

import (
	"errors"

	"github.com/waleedthermon/Doctracking/internal/repository"
)

// ErrValidation is returned when a submission is missing required fields.
// It blocks the specific submission only; the session continues.
var ErrValidation = errors.New("validation failed")

// Services holds one service per dashboard concern.
type Services struct {
	Roster   *RosterService
	Document *DocumentService
	Drawing  *DrawingService
}

// NewServices wires the services over the workbook repositories. Services
// hold no state between requests: every call reloads its registries through
// the repositories, so each interaction sees the latest persisted tables.
func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Roster:   NewRosterService(repos.Team),
		Document: NewDocumentService(repos.Document),
		Drawing:  NewDrawingService(repos.Drawing, repos.Document, repos.Team),
	}
}
