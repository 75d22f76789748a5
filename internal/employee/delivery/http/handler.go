package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/yangliu6605/react-ems/internal/employee/domain"
	"github.com/yangliu6605/react-ems/pkg/logger"
)

// EmployeeHandler handles HTTP requests for employees. Plain CRUD with
// no ledger coupling, so it talks to the repository directly.
type EmployeeHandler struct {
	repo domain.EmployeeRepository
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(repo domain.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

// RegisterRoutes registers all employee routes
func (h *EmployeeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/employees", h.ListEmployees).Methods("GET")
	router.HandleFunc("/api/employees", h.CreateEmployee).Methods("POST")
	router.HandleFunc("/api/employees/{id}", h.GetEmployee).Methods("GET")
	router.HandleFunc("/api/employees/{id}", h.UpdateEmployee).Methods("PUT")
	router.HandleFunc("/api/employees/{id}", h.DeleteEmployee).Methods("DELETE")
}

// ListEmployees handles GET /api/employees
func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repo.FindAll()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list employees")
		respondError(w, http.StatusInternalServerError, "failed to list employees")
		return
	}
	respondJSON(w, http.StatusOK, employees)
}

// GetEmployee handles GET /api/employees/{id}
func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	employee, err := h.repo.FindByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, domain.ErrNotFound.Error())
		return
	}
	respondJSON(w, http.StatusOK, employee)
}

// CreateEmployee handles POST /api/employees
func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	id := req.ID
	if id == "" {
		id = fmt.Sprintf("EMP-%s", uuid.New().String()[:8])
	}

	employee := &domain.Employee{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(employee); err != nil {
		logger.Logger.Error().Err(err).Str("employee_id", id).Msg("Failed to create employee")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, employee)
}

// UpdateEmployee handles PUT /api/employees/{id}
func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	employee, err := h.repo.FindByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, domain.ErrNotFound.Error())
		return
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	employee.UpdatedAt = time.Now()

	if err := h.repo.Update(employee); err != nil {
		logger.Logger.Error().Err(err).Str("employee_id", id).Msg("Failed to update employee")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /api/employees/{id}
func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		logger.Logger.Error().Err(err).Str("employee_id", id).Msg("Failed to delete employee")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError sends the error body shape the UI expects
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
