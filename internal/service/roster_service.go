package service

import (
	"context"

	"github.com/waleedthermon/Doctracking/internal/entity"
	"github.com/waleedthermon/Doctracking/internal/repository"
)

// RosterService answers identity questions against the team roster.
type RosterService struct {
	team *repository.TeamRepository
}

func NewRosterService(team *repository.TeamRepository) *RosterService {
	return &RosterService{team: team}
}

// Members returns the full roster in sheet order.
func (s *RosterService) Members(ctx context.Context) ([]entity.TeamMember, error) {
	return s.team.All(ctx)
}

// Names returns the unique roster names, for the identity picker.
func (s *RosterService) Names(ctx context.Context) ([]string, error) {
	return s.team.AllNames(ctx)
}

// Lookup resolves a name to its roster entry. Returns
// repository.ErrNotFound for a name not on the roster.
func (s *RosterService) Lookup(ctx context.Context, name string) (*entity.TeamMember, error) {
	return s.team.Lookup(ctx, name)
}
