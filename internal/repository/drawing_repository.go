package repository

import (
	"context"
	"fmt"

	"github.com/waleedthermon/Doctracking/internal/entity"
	"github.com/xuri/excelize/v2"
)

// DrawingSheet is the sheet name of the drawing registry workbook and of
// exported assignment workbooks.
const DrawingSheet = "Drawings"

// drawingColumns is the canonical column set. The registry and assignment
// exports share it, so an export parses back with ParseDrawings.
var drawingColumns = []string{
	"Drawing Number",
	"Title",
	"Discipline",
	"Documents",
	"Designer",
	"Drafters",
	"Checker",
	"Lead",
	"Status",
	"RFI Number",
	"Red Flag",
	"Location",
}

// DrawingRepository persists the drawing registry workbook. Rows are
// append-only in creation order; every append rewrites the full table.
type DrawingRepository struct {
	path string
}

func NewDrawingRepository(path string) *DrawingRepository {
	return &DrawingRepository{path: path}
}

// All returns the registry in creation order. A missing workbook loads as an
// empty registry with the canonical columns.
func (r *DrawingRepository) All(ctx context.Context) ([]entity.Drawing, error) {
	if !fileExists(r.path) {
		return nil, nil
	}
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", r.path, err)
	}
	defer f.Close()
	return ParseDrawings(f)
}

// Append validates nothing itself (the service layer does) and persists the
// registry with the new row at the end. A persistence failure leaves the
// previously saved table in place.
func (r *DrawingRepository) Append(ctx context.Context, drawing *entity.Drawing) error {
	drawings, err := r.All(ctx)
	if err != nil {
		return err
	}
	drawings = append(drawings, *drawing)
	return r.SaveAll(ctx, drawings)
}

// SaveAll rewrites the registry workbook in full.
func (r *DrawingRepository) SaveAll(ctx context.Context, drawings []entity.Drawing) error {
	return writeTable(r.path, DrawingSheet, drawingColumns, drawingRows(drawings))
}

// BuildDrawingWorkbook creates a workbook of the given drawings with the canonical
// columns. Used for the registry itself and for assignment exports.
func BuildDrawingWorkbook(drawings []entity.Drawing) (*excelize.File, error) {
	return buildWorkbook(DrawingSheet, drawingColumns, drawingRows(drawings))
}

// ParseDrawings reads drawings from the first sheet of a workbook (the
// registry file, or a previously exported assignment workbook).
func ParseDrawings(f *excelize.File) ([]entity.Drawing, error) {
	header, rows, err := parseTable(f)
	if err != nil {
		return nil, err
	}
	if len(header) == 0 {
		return nil, nil
	}
	idx := headerIndex(header)
	numberCol := columnIndex(idx, "Drawing Number")
	if numberCol < 0 {
		return nil, fmt.Errorf("%w: Drawing Number", ErrMissingColumn)
	}

	drawings := make([]entity.Drawing, 0, len(rows))
	for _, row := range rows {
		number := cellAt(row, numberCol)
		if number == "" {
			continue
		}
		drawings = append(drawings, entity.Drawing{
			DrawingNumber: number,
			Title:         cellAt(row, columnIndex(idx, "Title")),
			Discipline:    cellAt(row, columnIndex(idx, "Discipline")),
			Documents:     entity.SplitList(cellAt(row, columnIndex(idx, "Documents"))),
			Designer:      cellAt(row, columnIndex(idx, "Designer")),
			Drafters:      entity.SplitList(cellAt(row, columnIndex(idx, "Drafters"))),
			Checker:       cellAt(row, columnIndex(idx, "Checker")),
			Lead:          cellAt(row, columnIndex(idx, "Lead")),
			Status:        cellAt(row, columnIndex(idx, "Status")),
			RFINumber:     cellAt(row, columnIndex(idx, "RFI Number")),
			RedFlag:       cellAt(row, columnIndex(idx, "Red Flag")),
			Location:      cellAt(row, columnIndex(idx, "Location")),
		})
	}
	return drawings, nil
}

func drawingRows(drawings []entity.Drawing) [][]string {
	rows := make([][]string, 0, len(drawings))
	for _, d := range drawings {
		rows = append(rows, []string{
			d.DrawingNumber,
			d.Title,
			d.Discipline,
			entity.JoinList(d.Documents),
			d.Designer,
			entity.JoinList(d.Drafters),
			d.Checker,
			d.Lead,
			d.Status,
			d.RFINumber,
			d.RedFlag,
			d.Location,
		})
	}
	return rows
}
