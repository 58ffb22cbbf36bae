package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"estimator/models"
	"estimator/storage"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *sql.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	d, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	r := gin.New()
	r.GET("/api/estimates", GetEstimates(d))
	r.POST("/api/estimates", CreateEstimate(d))
	r.GET("/api/estimates/:id", GetEstimate(d))
	r.PUT("/api/estimates/:id", UpdateEstimate(d))
	r.DELETE("/api/estimates/:id", DeleteEstimate(d))
	r.POST("/api/estimates/:id/duplicate", DuplicateEstimate(d))
	r.GET("/api/dashboard", GetDashboard(d))
	return r, d
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateEstimateDefaults(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/estimates", []byte(`{}`))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var e models.Estimate
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if e.ID == "" {
		t.Error("no id assigned")
	}
	if e.Name != "New estimate" {
		t.Errorf("Name = %q, want default", e.Name)
	}
	if e.Status != models.StatusDraft {
		t.Errorf("Status = %q, want draft", e.Status)
	}
}

func TestCreateEstimateBlankNameRejected(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/estimates", []byte(`{"name":"   "}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestEstimateLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	body := []byte(`{"name":"Quote","object":"Apartment","discount":10,
		"items":[{"name":"Canvas","unit":"m2","quantity":20,"price":610}]}`)
	w := doJSON(t, r, http.MethodPost, "/api/estimates", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	var created models.Estimate
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.FinalTotal != 10980 {
		t.Errorf("FinalTotal = %v, want 10980", created.FinalTotal)
	}

	// Read back.
	w = doJSON(t, r, http.MethodGet, "/api/estimates/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	// Update recomputes totals.
	update := []byte(`{"name":"Quote","discount":0,
		"items":[{"name":"Canvas","unit":"m2","quantity":10,"price":610}]}`)
	w = doJSON(t, r, http.MethodPut, "/api/estimates/"+created.ID, update)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}
	var updated models.Estimate
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("update changed id: %s -> %s", created.ID, updated.ID)
	}
	if updated.FinalTotal != 6100 {
		t.Errorf("FinalTotal = %v, want 6100", updated.FinalTotal)
	}

	// Duplicate.
	w = doJSON(t, r, http.MethodPost, "/api/estimates/"+created.ID+"/duplicate", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("duplicate status = %d", w.Code)
	}
	var dup models.Estimate
	if err := json.Unmarshal(w.Body.Bytes(), &dup); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dup.ID == created.ID {
		t.Error("duplicate shares id")
	}

	// List shows both.
	w = doJSON(t, r, http.MethodGet, "/api/estimates", nil)
	var list []models.Estimate
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("list = %d, want 2", len(list))
	}

	// Delete; a second delete of the same id still reports success.
	w = doJSON(t, r, http.MethodDelete, "/api/estimates/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/api/estimates/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Errorf("repeat delete status = %d", w.Code)
	}
}

func TestGetEstimateNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/estimates/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDashboard(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, payload := range []string{
		`{"name":"A","object":"x","status":"draft","items":[{"name":"i","unit":"m2","quantity":1,"price":100}]}`,
		`{"name":"B","object":"x","status":"completed","items":[{"name":"i","unit":"m2","quantity":2,"price":100}]}`,
	} {
		w := doJSON(t, r, http.MethodPost, "/api/estimates", []byte(payload))
		if w.Code != http.StatusCreated {
			t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", w.Code)
	}
	var dash models.DashboardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &dash); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dash.Estimates != 2 {
		t.Errorf("Estimates = %d, want 2", dash.Estimates)
	}
	if dash.ByStatus[models.StatusDraft] != 1 || dash.ByStatus[models.StatusCompleted] != 1 {
		t.Errorf("ByStatus = %v", dash.ByStatus)
	}
	// Completed work is out of the pipeline.
	if dash.PipelineValue != 100 {
		t.Errorf("PipelineValue = %v, want 100", dash.PipelineValue)
	}
}
