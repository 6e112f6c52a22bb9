package repository

import (
	"context"
	"fmt"

	"github.com/waleedthermon/Doctracking/internal/entity"
)

// TeamSheet is the sheet name of the team roster workbook.
const TeamSheet = "Team"

var teamColumns = []string{"Name", "Role", "Location"}

// TeamRepository reads the team roster workbook. The roster is read-only
// within a session; SaveAll exists for provisioning and test fixtures.
type TeamRepository struct {
	path string
}

func NewTeamRepository(path string) *TeamRepository {
	return &TeamRepository{path: path}
}

// All returns the roster in sheet order.
func (r *TeamRepository) All(ctx context.Context) ([]entity.TeamMember, error) {
	header, rows, err := readTable(r.path)
	if err != nil {
		return nil, err
	}
	idx := headerIndex(header)
	nameCol := columnIndex(idx, "Name")
	roleCol := columnIndex(idx, "Role")
	locationCol := columnIndex(idx, "Location")
	if nameCol < 0 {
		return nil, fmt.Errorf("team roster %s: %w: Name", r.path, ErrMissingColumn)
	}

	members := make([]entity.TeamMember, 0, len(rows))
	for _, row := range rows {
		name := cellAt(row, nameCol)
		if name == "" {
			continue
		}
		members = append(members, entity.TeamMember{
			Name:     name,
			Role:     cellAt(row, roleCol),
			Location: cellAt(row, locationCol),
		})
	}
	return members, nil
}

// Lookup finds a roster member by name. Returns ErrNotFound for an unknown
// name.
func (r *TeamRepository) Lookup(ctx context.Context, name string) (*entity.TeamMember, error) {
	members, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].Name == name {
			return &members[i], nil
		}
	}
	return nil, fmt.Errorf("team member %q: %w", name, ErrNotFound)
}

// AllNames returns the unique roster names in sheet order.
func (r *TeamRepository) AllNames(ctx context.Context) ([]string, error) {
	members, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(members))
	names := make([]string, 0, len(members))
	for _, m := range members {
		if seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		names = append(names, m.Name)
	}
	return names, nil
}

// SaveAll rewrites the roster workbook in full.
func (r *TeamRepository) SaveAll(ctx context.Context, members []entity.TeamMember) error {
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{m.Name, m.Role, m.Location})
	}
	return writeTable(r.path, TeamSheet, teamColumns, rows)
}
