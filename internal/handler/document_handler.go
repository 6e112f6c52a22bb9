package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/waleedthermon/Doctracking/internal/service"
	"github.com/xuri/excelize/v2"
)

// DocumentHandler serves the document registry and its spreadsheet import.
type DocumentHandler struct {
	svc *service.DocumentService
}

func NewDocumentHandler(svc *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// List GET /api/v1/documents
func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, gin.H{"items": docs})
}

// Import POST /api/v1/documents/import
// Accepts a multipart "file" upload and merges it into the registry.
func (h *DocumentHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "file is required: "+err.Error())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		BadRequest(c, "failed to open upload: "+err.Error())
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		BadRequest(c, "failed to parse workbook: "+err.Error())
		return
	}
	defer f.Close()

	result, err := h.svc.Import(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, result)
}

// Template GET /api/v1/documents/template
func (h *DocumentHandler) Template(c *gin.Context) {
	f, err := h.svc.Template()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\"document_import_template.xlsx\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write template: "+err.Error())
	}
}
