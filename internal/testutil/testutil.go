package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/waleedthermon/Doctracking/internal/config"
	"github.com/waleedthermon/Doctracking/internal/entity"
	"github.com/waleedthermon/Doctracking/internal/repository"
)

// SetupRepos creates repositories over a per-test temp directory, so each
// test works on isolated workbook files.
func SetupRepos(t *testing.T) (*repository.Repositories, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DataConfig{
		Dir:          dir,
		TeamFile:     "team.xlsx",
		DocumentFile: "documents.xlsx",
		DrawingFile:  "drawings.xlsx",
	}
	return repository.NewRepositories(cfg), dir
}

// SetupRouter creates a gin test router
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// SeedTeam writes a team roster workbook with the given members.
func SeedTeam(t *testing.T, repos *repository.Repositories, members ...entity.TeamMember) {
	t.Helper()
	if err := repos.Team.SaveAll(context.Background(), members); err != nil {
		t.Fatalf("Failed to seed team roster: %v", err)
	}
}

// SeedDocuments writes a document registry workbook with the given documents.
func SeedDocuments(t *testing.T, repos *repository.Repositories, docs ...entity.Document) {
	t.Helper()
	if err := repos.Document.SaveAll(context.Background(), docs); err != nil {
		t.Fatalf("Failed to seed document registry: %v", err)
	}
}

// SeedDrawings writes a drawing registry workbook with the given drawings.
func SeedDrawings(t *testing.T, repos *repository.Repositories, drawings ...entity.Drawing) {
	t.Helper()
	if err := repos.Drawing.SaveAll(context.Background(), drawings); err != nil {
		t.Fatalf("Failed to seed drawing registry: %v", err)
	}
}

// DefaultTeam seeds the roster used by most tests.
func DefaultTeam(t *testing.T, repos *repository.Repositories) {
	t.Helper()
	SeedTeam(t, repos,
		entity.TeamMember{Name: "Alice", Role: "Designer", Location: "Houston"},
		entity.TeamMember{Name: "Bob", Role: "Checker", Location: "Calgary"},
		entity.TeamMember{Name: "Carol", Role: "Lead", Location: "Houston"},
	)
}

// DoRequest executes an HTTP request against the test router
func DoRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// DoUpload executes a multipart upload request against the test router.
func DoUpload(r *gin.Engine, method, path, field, filename string, content []byte) *httptest.ResponseRecorder {
	body, contentType := multipartBody(field, filename, content)

	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response body into a handler.Response-like map
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

func multipartBody(field, filename string, content []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile(field, filename)
	part.Write(content)
	writer.Close()
	return body, writer.FormDataContentType()
}
