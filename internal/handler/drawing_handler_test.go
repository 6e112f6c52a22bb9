package handler

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/waleedthermon/Doctracking/internal/entity"
	"github.com/waleedthermon/Doctracking/internal/repository"
	"github.com/waleedthermon/Doctracking/internal/testutil"
	"github.com/xuri/excelize/v2"
)

func TestDrawingCreateAndAssignedList(t *testing.T) {
	router, repos := newTestEnv(t)
	testutil.DefaultTeam(t, repos)
	testutil.SeedDocuments(t, repos,
		entity.Document{Number: "D1", Revision: "1"},
		entity.Document{Number: "D2", Revision: "2"},
	)

	// Create a drawing over documents on diverging revisions
	w := testutil.DoRequest(router, "POST", "/api/v1/drawings",
		map[string]interface{}{
			"drawing_number": "DWG-100",
			"title":          "Pump Skid Layout",
			"documents":      []string{"D1", "D2"},
			"created_by":     "Alice",
		})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["red_flag"] != "Revision Mismatch" {
		t.Errorf("Expected red flag, got %v", data["red_flag"])
	}
	if data["designer"] != "Alice" {
		t.Errorf("Expected designer Alice, got %v", data["designer"])
	}
	if data["status"] != "Under Design" {
		t.Errorf("Expected status Under Design, got %v", data["status"])
	}
	if data["location"] != "Houston" {
		t.Errorf("Expected location Houston, got %v", data["location"])
	}

	// The creator sees it in their assignments
	w2 := testutil.DoRequest(router, "GET", "/api/v1/users/Alice/drawings", nil)
	if w2.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w2.Code, w2.Body.String())
	}
	resp2 := testutil.ParseResponse(w2)
	items := resp2["data"].(map[string]interface{})["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("Expected 1 assigned drawing, got %d", len(items))
	}

	// An uninvolved user sees an empty list, not an error
	w3 := testutil.DoRequest(router, "GET", "/api/v1/users/Bob/drawings", nil)
	if w3.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w3.Code, w3.Body.String())
	}
	resp3 := testutil.ParseResponse(w3)
	items3 := resp3["data"].(map[string]interface{})["items"].([]interface{})
	if len(items3) != 0 {
		t.Errorf("Expected 0 assigned drawings for Bob, got %d", len(items3))
	}
}

func TestDrawingCreateValidation(t *testing.T) {
	router, repos := newTestEnv(t)
	testutil.DefaultTeam(t, repos)
	testutil.SeedDocuments(t, repos, entity.Document{Number: "D1", Revision: "1"})

	// Blank drawing number
	w := testutil.DoRequest(router, "POST", "/api/v1/drawings",
		map[string]interface{}{
			"drawing_number": "   ",
			"documents":      []string{"D1"},
			"created_by":     "Alice",
		})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for blank number, got %d", w.Code)
	}

	// No documents selected
	w2 := testutil.DoRequest(router, "POST", "/api/v1/drawings",
		map[string]interface{}{
			"drawing_number": "DWG-1",
			"created_by":     "Alice",
		})
	if w2.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing documents, got %d", w2.Code)
	}

	// Unknown roster name
	w3 := testutil.DoRequest(router, "POST", "/api/v1/drawings",
		map[string]interface{}{
			"drawing_number": "DWG-1",
			"documents":      []string{"D1"},
			"created_by":     "Mallory",
		})
	if w3.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown user, got %d", w3.Code)
	}
}

func TestDrawingListFilters(t *testing.T) {
	router, repos := newTestEnv(t)
	testutil.SeedDrawings(t, repos,
		entity.Drawing{DrawingNumber: "DWG-100", Documents: []string{"D1"}, Status: "New"},
		entity.Drawing{DrawingNumber: "DWG-200", Documents: []string{"D2"}, Status: "Under Design", RedFlag: "Revision Mismatch"},
		entity.Drawing{DrawingNumber: "PID-300", Documents: []string{"D3"}, Status: "New"},
	)

	// Unfiltered
	w := testutil.DoRequest(router, "GET", "/api/v1/drawings", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if items := resp["data"].(map[string]interface{})["items"].([]interface{}); len(items) != 3 {
		t.Errorf("Expected 3 drawings, got %d", len(items))
	}

	// Search narrows by number, case-insensitive
	w2 := testutil.DoRequest(router, "GET", "/api/v1/drawings?search=dwg", nil)
	resp2 := testutil.ParseResponse(w2)
	if items := resp2["data"].(map[string]interface{})["items"].([]interface{}); len(items) != 2 {
		t.Errorf("Expected 2 matches for dwg, got %d", len(items))
	}

	// Search with no matches returns an empty list
	w3 := testutil.DoRequest(router, "GET", "/api/v1/drawings?search=zzz", nil)
	resp3 := testutil.ParseResponse(w3)
	if items := resp3["data"].(map[string]interface{})["items"].([]interface{}); len(items) != 0 {
		t.Errorf("Expected 0 matches for zzz, got %d", len(items))
	}

	// Status and red-flag filters
	w4 := testutil.DoRequest(router, "GET", "/api/v1/drawings?status=New", nil)
	resp4 := testutil.ParseResponse(w4)
	if items := resp4["data"].(map[string]interface{})["items"].([]interface{}); len(items) != 2 {
		t.Errorf("Expected 2 New drawings, got %d", len(items))
	}
	w5 := testutil.DoRequest(router, "GET", "/api/v1/drawings?red_flag=Revision+Mismatch", nil)
	resp5 := testutil.ParseResponse(w5)
	if items := resp5["data"].(map[string]interface{})["items"].([]interface{}); len(items) != 1 {
		t.Errorf("Expected 1 flagged drawing, got %d", len(items))
	}
}

func TestDrawingNotifications(t *testing.T) {
	router, repos := newTestEnv(t)
	testutil.SeedDrawings(t, repos,
		entity.Drawing{DrawingNumber: "DWG-1", Designer: "Alice", Status: "Under Design", RedFlag: "Revision Mismatch"},
		entity.Drawing{DrawingNumber: "DWG-2", Designer: "Alice", Status: "On-Hold for Missing Info"},
		entity.Drawing{DrawingNumber: "DWG-3", Designer: "Bob", Status: "On-Hold for Missing Info"},
	)

	w := testutil.DoRequest(router, "GET", "/api/v1/users/Alice/notifications", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if flagged := data["red_flags"].([]interface{}); len(flagged) != 1 {
		t.Errorf("Expected 1 red-flag notification, got %d", len(flagged))
	}
	if onHold := data["on_hold"].([]interface{}); len(onHold) != 1 {
		t.Errorf("Expected 1 on-hold notification, got %d", len(onHold))
	}
}

func TestDrawingExport(t *testing.T) {
	router, repos := newTestEnv(t)
	testutil.SeedDrawings(t, repos,
		entity.Drawing{DrawingNumber: "DWG-1", Designer: "Alice", Documents: []string{"D1"}, Status: "New"},
		entity.Drawing{DrawingNumber: "DWG-2", Designer: "Bob", Documents: []string{"D2"}, Status: "New"},
	)

	w := testutil.DoRequest(router, "GET", "/api/v1/users/Alice/drawings/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if disp := w.Header().Get("Content-Disposition"); !strings.Contains(disp, "your_assignments.xlsx") {
		t.Errorf("Expected attachment disposition, got %q", disp)
	}

	// The download parses back to exactly the assigned subset
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("Failed to open exported workbook: %v", err)
	}
	defer f.Close()
	drawings, err := repository.ParseDrawings(f)
	if err != nil {
		t.Fatalf("Failed to parse exported workbook: %v", err)
	}
	if len(drawings) != 1 || drawings[0].DrawingNumber != "DWG-1" {
		t.Errorf("Expected export of DWG-1 only, got %+v", drawings)
	}
}

func TestDashboardCharts(t *testing.T) {
	router, repos := newTestEnv(t)
	testutil.SeedDrawings(t, repos,
		entity.Drawing{DrawingNumber: "1", Designer: "Alice", Status: "New"},
		entity.Drawing{DrawingNumber: "2", Designer: "Alice", Status: "New"},
		entity.Drawing{DrawingNumber: "3", Designer: "Bob", Status: "Under Design"},
	)

	w := testutil.DoRequest(router, "GET", "/api/v1/dashboard/charts", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	statusCounts := data["status_counts"].([]interface{})
	if len(statusCounts) != 2 {
		t.Fatalf("Expected 2 status buckets, got %d", len(statusCounts))
	}
	first := statusCounts[0].(map[string]interface{})
	if first["key"] != "New" || first["count"] != float64(2) {
		t.Errorf("Expected New:2 first, got %v", first)
	}
	if designerCounts := data["designer_counts"].([]interface{}); len(designerCounts) != 2 {
		t.Errorf("Expected 2 designer buckets, got %d", len(designerCounts))
	}
}
