package service

import (
	"context"

	"github.com/waleedthermon/Doctracking/internal/entity"
	"github.com/waleedthermon/Doctracking/internal/repository"
	"github.com/xuri/excelize/v2"
)

// DocumentService manages the document registry and its spreadsheet import.
type DocumentService struct {
	documents *repository.DocumentRepository
}

func NewDocumentService(documents *repository.DocumentRepository) *DocumentService {
	return &DocumentService{documents: documents}
}

// ImportResult reports what a registry import did: Merged counts rows taken
// from the upload, Added counts net-new document numbers.
type ImportResult struct {
	Merged int `json:"merged"`
	Added  int `json:"added"`
}

// List returns the document registry in sheet order.
func (s *DocumentService) List(ctx context.Context) ([]entity.Document, error) {
	return s.documents.All(ctx)
}

// Import merges an uploaded workbook into the registry by document number,
// last write wins. A workbook without the Document Number column fails with
// repository.ErrMissingColumn and leaves the registry untouched.
func (s *DocumentService) Import(ctx context.Context, f *excelize.File) (*ImportResult, error) {
	merged, added, err := s.documents.ImportMerge(ctx, f)
	if err != nil {
		return nil, err
	}
	return &ImportResult{Merged: merged, Added: added}, nil
}

// Template generates an empty workbook with the canonical document columns
// for users preparing an import.
func (s *DocumentService) Template() (*excelize.File, error) {
	return repository.BuildDocumentWorkbook(nil)
}
