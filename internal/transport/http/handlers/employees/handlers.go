package employeeshandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/directory"
	"paydesk/internal/transport/http/api"
	"paydesk/internal/transport/http/middleware"
	"paydesk/internal/transport/http/shared"
)

type Handler struct {
	Service *directory.Service
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleUpsert)
		r.Get("/{employeeID}", h.handleGet)
		r.Put("/{employeeID}", h.handleUpdate)
	})
}

type employeePayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	BankDetails string `json:"bankDetails"`
	TaxNumber   string `json:"taxNumber"`
	PFNumber    string `json:"pfNumber"`
	UTINumber   string `json:"utiNumber"`
}

func (p employeePayload) employee() directory.Employee {
	return directory.Employee{
		ID:          p.ID,
		Name:        p.Name,
		Department:  p.Department,
		BankDetails: p.BankDetails,
		TaxNumber:   p.TaxNumber,
		PFNumber:    p.PFNumber,
		UTINumber:   p.UTINumber,
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	employees, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage", "failed to load employees", reqID)
		return
	}
	if employees == nil {
		employees = []directory.Employee{}
	}
	api.Success(w, employees, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	emp, err := h.Service.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		if errors.Is(err, directory.ErrEmployeeNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "storage", "failed to load employee", reqID)
		return
	}
	api.Success(w, emp, reqID)
}

func (h *Handler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("id", payload.ID, "employee id is required")
	v.Required("name", payload.Name, "employee name is required")
	if v.HasIssues() {
		api.FailWithDetails(w, http.StatusBadRequest, "validation", "invalid employee", v.Issues(), reqID)
		return
	}

	stored, err := h.Service.Upsert(r.Context(), payload.employee())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage", "failed to save employee", reqID)
		return
	}
	api.Created(w, stored, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", reqID)
		return
	}

	// The path parameter wins over any id in the body.
	payload.ID = chi.URLParam(r, "employeeID")

	stored, err := h.Service.Upsert(r.Context(), payload.employee())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage", "failed to save employee", reqID)
		return
	}
	api.Success(w, stored, reqID)
}
