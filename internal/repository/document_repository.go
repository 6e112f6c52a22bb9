package repository

import (
	"context"
	"fmt"

	"github.com/waleedthermon/Doctracking/internal/entity"
	"github.com/xuri/excelize/v2"
)

// DocumentSheet is the sheet name of the document registry workbook.
const DocumentSheet = "Documents"

// DocumentColumnNumber is the merge key column; an import without it is
// rejected with ErrMissingColumn.
const (
	DocumentColumnNumber   = "Document Number"
	DocumentColumnRevision = "Revision"
)

var documentColumns = []string{DocumentColumnNumber, DocumentColumnRevision}

// DocumentRepository persists the document registry workbook. The registry is
// append-only with merge-by-number semantics: re-importing a document number
// replaces the earlier row.
type DocumentRepository struct {
	path string
}

func NewDocumentRepository(path string) *DocumentRepository {
	return &DocumentRepository{path: path}
}

// All returns the registry in sheet order. A missing workbook loads as an
// empty registry.
func (r *DocumentRepository) All(ctx context.Context) ([]entity.Document, error) {
	if !fileExists(r.path) {
		return nil, nil
	}
	header, rows, err := readTable(r.path)
	if err != nil {
		return nil, err
	}
	return documentsFromRows(header, rows)
}

// AllNumbers returns the set of document numbers in sheet order.
func (r *DocumentRepository) AllNumbers(ctx context.Context) ([]string, error) {
	docs, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(docs))
	for _, d := range docs {
		numbers = append(numbers, d.Number)
	}
	return numbers, nil
}

// RevisionsFor returns the distinct revision values of the named documents,
// in first-encountered registry order. Unknown numbers contribute nothing.
func (r *DocumentRepository) RevisionsFor(ctx context.Context, numbers []string) ([]string, error) {
	docs, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	wanted := make(map[string]bool, len(numbers))
	for _, n := range numbers {
		wanted[n] = true
	}
	seen := make(map[string]bool)
	var revisions []string
	for _, d := range docs {
		if !wanted[d.Number] || seen[d.Revision] {
			continue
		}
		seen[d.Revision] = true
		revisions = append(revisions, d.Revision)
	}
	return revisions, nil
}

// SaveAll rewrites the registry workbook in full.
func (r *DocumentRepository) SaveAll(ctx context.Context, docs []entity.Document) error {
	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, []string{d.Number, d.Revision})
	}
	return writeTable(r.path, DocumentSheet, documentColumns, rows)
}

// BuildDocumentWorkbook creates a workbook of the given documents with the
// canonical columns. With no documents it is the import template.
func BuildDocumentWorkbook(docs []entity.Document) (*excelize.File, error) {
	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, []string{d.Number, d.Revision})
	}
	return buildWorkbook(DocumentSheet, documentColumns, rows)
}

// ImportMerge merges an uploaded workbook into the registry by document
// number, last write wins, and persists the result. It returns the count of
// rows merged from the upload and the count of net-new document numbers.
// Re-importing the same file is idempotent.
func (r *DocumentRepository) ImportMerge(ctx context.Context, f *excelize.File) (merged, added int, err error) {
	header, rows, err := parseTable(f)
	if err != nil {
		return 0, 0, err
	}
	incoming, err := documentsFromRows(header, rows)
	if err != nil {
		return 0, 0, err
	}

	existing, err := r.All(ctx)
	if err != nil {
		return 0, 0, err
	}
	index := make(map[string]int, len(existing))
	for i, d := range existing {
		index[d.Number] = i
	}

	for _, doc := range incoming {
		merged++
		if i, ok := index[doc.Number]; ok {
			existing[i] = doc
			continue
		}
		index[doc.Number] = len(existing)
		existing = append(existing, doc)
		added++
	}

	if err := r.SaveAll(ctx, existing); err != nil {
		return 0, 0, err
	}
	return merged, added, nil
}

func documentsFromRows(header []string, rows [][]string) ([]entity.Document, error) {
	idx := headerIndex(header)
	numberCol := columnIndex(idx, DocumentColumnNumber)
	revisionCol := columnIndex(idx, DocumentColumnRevision)
	if numberCol < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, DocumentColumnNumber)
	}

	docs := make([]entity.Document, 0, len(rows))
	for _, row := range rows {
		number := cellAt(row, numberCol)
		if number == "" {
			continue
		}
		docs = append(docs, entity.Document{
			Number:   number,
			Revision: cellAt(row, revisionCol),
		})
	}
	return docs, nil
}
