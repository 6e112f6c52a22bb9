package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/waleedthermon/Doctracking/internal/entity"
	"github.com/waleedthermon/Doctracking/internal/repository"
	"github.com/xuri/excelize/v2"
)

// DrawingService derives the dashboard views over the drawing registry and
// owns the one mutation in the system: creating a drawing.
type DrawingService struct {
	drawings  *repository.DrawingRepository
	documents *repository.DocumentRepository
	team      *repository.TeamRepository
}

func NewDrawingService(drawings *repository.DrawingRepository, documents *repository.DocumentRepository, team *repository.TeamRepository) *DrawingService {
	return &DrawingService{drawings: drawings, documents: documents, team: team}
}

// CreateDrawingInput is a manual creation submission. CreatedBy is the roster
// name of the submitting user; designer and location are stamped from it.
type CreateDrawingInput struct {
	DrawingNumber string   `json:"drawing_number"`
	Title         string   `json:"title"`
	Discipline    string   `json:"discipline"`
	Documents     []string `json:"documents"`
	Drafters      []string `json:"drafters"`
	Checker       string   `json:"checker"`
	Lead          string   `json:"lead"`
	RFINumber     string   `json:"rfi_number"`
	CreatedBy     string   `json:"created_by"`
}

// ListOptions narrows the registry listing. Empty fields apply no filter.
type ListOptions struct {
	Search  string
	Status  string
	RedFlag string
}

// Notifications are the exception subsets of a user's assignments.
type Notifications struct {
	RedFlags []entity.Drawing `json:"red_flags"`
	OnHold   []entity.Drawing `json:"on_hold"`
}

// Charts are the aggregate tabulations over the full registry.
type Charts struct {
	StatusCounts   []Count `json:"status_counts"`
	DesignerCounts []Count `json:"designer_counts"`
}

// Count is one bar of a frequency tabulation.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// List returns the registry, optionally narrowed by search term, status and
// red-flag value.
func (s *DrawingService) List(ctx context.Context, opts ListOptions) ([]entity.Drawing, error) {
	drawings, err := s.drawings.All(ctx)
	if err != nil {
		return nil, err
	}
	drawings = Search(drawings, opts.Search)
	if opts.Status != "" {
		drawings = FilterStatus(drawings, opts.Status)
	}
	if opts.RedFlag != "" {
		drawings = FilterRedFlag(drawings, opts.RedFlag)
	}
	return drawings, nil
}

// Assignments returns the drawings assigned to the named user, in registry
// order. A user with no assignments (or not on the roster at all) gets an
// empty result, not an error.
func (s *DrawingService) Assignments(ctx context.Context, user string) ([]entity.Drawing, error) {
	drawings, err := s.drawings.All(ctx)
	if err != nil {
		return nil, err
	}
	return AssignedTo(drawings, user), nil
}

// Notify returns the red-flag and on-hold subsets of a user's assignments.
func (s *DrawingService) Notify(ctx context.Context, user string) (*Notifications, error) {
	assigned, err := s.Assignments(ctx, user)
	if err != nil {
		return nil, err
	}
	return &Notifications{
		RedFlags: FilterRedFlag(assigned, entity.RedFlagRevisionMismatch),
		OnHold:   FilterStatus(assigned, entity.StatusOnHold),
	}, nil
}

// ChartData tabulates status and designer counts over the full registry.
func (s *DrawingService) ChartData(ctx context.Context) (*Charts, error) {
	drawings, err := s.drawings.All(ctx)
	if err != nil {
		return nil, err
	}
	return &Charts{
		StatusCounts:   CountByStatus(drawings),
		DesignerCounts: CountByDesigner(drawings),
	}, nil
}

// Create validates a submission, computes the red flag against the current
// document registry snapshot, stamps designer, location and initial status
// from the submitting user, and appends the row. The red flag is frozen at
// creation; later document imports do not revalidate it. A persistence
// failure propagates and nothing is recorded.
func (s *DrawingService) Create(ctx context.Context, input CreateDrawingInput) (*entity.Drawing, error) {
	member, err := s.team.Lookup(ctx, input.CreatedBy)
	if err != nil {
		return nil, err
	}

	number := strings.TrimSpace(input.DrawingNumber)
	if number == "" {
		return nil, fmt.Errorf("%w: drawing number is required", ErrValidation)
	}
	if len(input.Documents) == 0 {
		return nil, fmt.Errorf("%w: at least one document must be selected", ErrValidation)
	}

	revisions, err := s.documents.RevisionsFor(ctx, input.Documents)
	if err != nil {
		return nil, err
	}
	redFlag := ""
	if len(revisions) > 1 {
		redFlag = entity.RedFlagRevisionMismatch
	}

	drawing := &entity.Drawing{
		DrawingNumber: number,
		Title:         input.Title,
		Discipline:    input.Discipline,
		Documents:     input.Documents,
		Designer:      member.Name,
		Drafters:      input.Drafters,
		Checker:       input.Checker,
		Lead:          input.Lead,
		Status:        entity.StatusUnderDesign,
		RFINumber:     input.RFINumber,
		RedFlag:       redFlag,
		Location:      member.Location,
	}

	if err := s.drawings.Append(ctx, drawing); err != nil {
		return nil, err
	}
	return drawing, nil
}

// ExportAssignments generates a workbook of exactly the named user's
// assigned drawings, with the canonical registry columns so the export
// parses back into the same drawing numbers.
func (s *DrawingService) ExportAssignments(ctx context.Context, user string) (*excelize.File, error) {
	assigned, err := s.Assignments(ctx, user)
	if err != nil {
		return nil, err
	}
	return repository.BuildDrawingWorkbook(assigned)
}

// AssignedTo filters to the drawings assigned to user: designer, checker or
// lead equality, or membership in the drafters set.
func AssignedTo(drawings []entity.Drawing, user string) []entity.Drawing {
	result := make([]entity.Drawing, 0)
	for _, d := range drawings {
		if d.AssignedTo(user) {
			result = append(result, d)
		}
	}
	return result
}

// FilterStatus filters to drawings with the exact status value.
func FilterStatus(drawings []entity.Drawing, status string) []entity.Drawing {
	result := make([]entity.Drawing, 0)
	for _, d := range drawings {
		if d.Status == status {
			result = append(result, d)
		}
	}
	return result
}

// FilterRedFlag filters to drawings with the exact red-flag value.
func FilterRedFlag(drawings []entity.Drawing, flag string) []entity.Drawing {
	result := make([]entity.Drawing, 0)
	for _, d := range drawings {
		if d.RedFlag == flag {
			result = append(result, d)
		}
	}
	return result
}

// Search filters to drawings whose number or document list contains the term,
// case-insensitive. An empty term leaves the input unfiltered; a term that
// matches nothing returns an empty slice.
func Search(drawings []entity.Drawing, term string) []entity.Drawing {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return drawings
	}
	result := make([]entity.Drawing, 0)
	for _, d := range drawings {
		if strings.Contains(strings.ToLower(d.DrawingNumber), term) ||
			strings.Contains(strings.ToLower(entity.JoinList(d.Documents)), term) {
			result = append(result, d)
		}
	}
	return result
}

// CountByStatus tabulates drawing counts per status, first-encountered order.
func CountByStatus(drawings []entity.Drawing) []Count {
	return countBy(drawings, func(d entity.Drawing) string { return d.Status })
}

// CountByDesigner tabulates drawing counts per designer, first-encountered
// order.
func CountByDesigner(drawings []entity.Drawing) []Count {
	return countBy(drawings, func(d entity.Drawing) string { return d.Designer })
}

func countBy(drawings []entity.Drawing, key func(entity.Drawing) string) []Count {
	index := make(map[string]int)
	counts := make([]Count, 0)
	for _, d := range drawings {
		k := key(d)
		if k == "" {
			continue
		}
		if i, ok := index[k]; ok {
			counts[i].Count++
			continue
		}
		index[k] = len(counts)
		counts = append(counts, Count{Key: k, Count: 1})
	}
	return counts
}
