package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/yangliu6605/react-ems/internal/employee"
	"github.com/yangliu6605/react-ems/internal/employee/domain"
	"github.com/yangliu6605/react-ems/internal/employee/repository"
)

func newEmployeeRouter(t *testing.T) *mux.Router {
	t.Helper()

	handler, err := employee.InitializeHTTPHandler(repository.NewMemoryEmployeeRepository())
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func doJSON(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateEmployeeGeneratesID(t *testing.T) {
	router := newEmployeeRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/employees",
		`{"name": "Jane Doe", "email": "jane@example.com", "phone": "555-0100"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var created domain.Employee
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(created.ID, "EMP-") {
		t.Errorf("id = %q, want EMP- prefix", created.ID)
	}
	if created.Name != "Jane Doe" {
		t.Errorf("name = %q", created.Name)
	}
}

func TestCreateEmployeeRequiresName(t *testing.T) {
	router := newEmployeeRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/employees", `{"email": "x@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected error message in body")
	}
}

func TestGetEmployeeNotFound(t *testing.T) {
	router := newEmployeeRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/employees/EMP-MISSING", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "employee not found" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestEmployeeUpdateAndDelete(t *testing.T) {
	router := newEmployeeRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/employees", `{"id": "EMP-001", "name": "Jane Doe"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}

	rec = doJSON(router, http.MethodPut, "/api/employees/EMP-001", `{"phone": "555-0101"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}

	var updated domain.Employee
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Phone != "555-0101" || updated.Name != "Jane Doe" {
		t.Errorf("partial merge broke fields: %+v", updated)
	}

	rec = doJSON(router, http.MethodDelete, "/api/employees/EMP-001", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"success":true}` {
		t.Errorf("delete body = %q", rec.Body.String())
	}

	rec = doJSON(router, http.MethodGet, "/api/employees/EMP-001", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestListEmployeesBareArray(t *testing.T) {
	router := newEmployeeRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/employees", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("body = %q, want bare empty array", rec.Body.String())
	}
}
