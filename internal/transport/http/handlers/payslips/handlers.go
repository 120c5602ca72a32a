package payslipshandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/directory"
	"paydesk/internal/domain/payroll"
	"paydesk/internal/platform/events"
	"paydesk/internal/transport/http/api"
	"paydesk/internal/transport/http/middleware"
	"paydesk/internal/transport/http/shared"
)

type Handler struct {
	Service    *payroll.Service
	Bus        *events.Bus
	PayslipDir string
}

func NewHandler(service *payroll.Service, bus *events.Bus, payslipDir string) *Handler {
	return &Handler{Service: service, Bus: bus, PayslipDir: payslipDir}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payslips", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleHistory)
		r.Get("/events", h.handleEvents)
		r.Get("/{payslipID}", h.handleGet)
		r.Get("/{payslipID}/download", h.handleDownload)
	})
}

type payslipPayload struct {
	Name        string                  `json:"name"`
	EmployeeID  string                  `json:"employeeId"`
	BankDetails string                  `json:"bankDetails"`
	TaxNumber   string                  `json:"taxNumber"`
	PFNumber    string                  `json:"pfNumber"`
	UTINumber   string                  `json:"utiNumber"`
	Month       string                  `json:"month"`
	Year        int                     `json:"year"`
	PayPeriod   string                  `json:"payPeriod"`
	Earnings    payroll.EarningsInput   `json:"earnings"`
	Deductions  payroll.DeductionsInput `json:"deductions"`
}

type payslipResponse struct {
	Payslip  payroll.Payslip     `json:"payslip"`
	Employee *directory.Employee `json:"employee"`
	Totals   payroll.Totals      `json:"totals"`
}

type historyEntryResponse struct {
	Payslip    payroll.Payslip     `json:"payslip"`
	Employee   *directory.Employee `json:"employee"`
	Unresolved bool                `json:"unresolved,omitempty"`
	Totals     payroll.Totals      `json:"totals"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload payslipPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", reqID)
		return
	}

	period, ok := h.resolvePeriod(w, payload, reqID)
	if !ok {
		return
	}

	sub := payroll.Submission{
		Name:        payload.Name,
		EmployeeID:  payload.EmployeeID,
		BankDetails: payload.BankDetails,
		TaxNumber:   payload.TaxNumber,
		PFNumber:    payload.PFNumber,
		UTINumber:   payload.UTINumber,
		Period:      period,
		Earnings:    payload.Earnings,
		Deductions:  payload.Deductions,
	}

	emp, slip, err := h.Service.SavePayslip(r.Context(), sub)
	if err != nil {
		if errors.Is(err, payroll.ErrDuplicatePayslip) {
			api.Fail(w, http.StatusConflict, "duplicate_payslip", err.Error(), reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "storage", "failed to save payslip", reqID)
		return
	}

	api.Created(w, payslipResponse{
		Payslip:  slip,
		Employee: &emp,
		Totals:   payroll.SubmissionTotals(payload.Earnings, payload.Deductions),
	}, reqID)
}

// resolvePeriod prefers the structured month/year fields and falls back
// to the legacy free-text payPeriod. Structured input is validated;
// free text stays lenient.
func (h *Handler) resolvePeriod(w http.ResponseWriter, payload payslipPayload, reqID string) (payroll.Period, bool) {
	if payload.Month == "" && payload.Year == 0 {
		return payroll.ParsePayPeriod(payload.PayPeriod, time.Now()), true
	}

	v := shared.NewValidator()
	v.Required("month", payload.Month, "month is required with a structured period")
	v.OneOf("month", payload.Month, payroll.Months, "must be a calendar month name, e.g. March")
	v.IntRange("year", payload.Year, 1900, 2200, "must be a four-digit calendar year")
	if v.HasIssues() {
		api.FailWithDetails(w, http.StatusBadRequest, "validation", "invalid pay period", v.Issues(), reqID)
		return payroll.Period{}, false
	}
	return payroll.Period{Month: payload.Month, Year: payload.Year}, true
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	financialYear := r.URL.Query().Get("financialYear")
	month := r.URL.Query().Get("month")

	v := shared.NewValidator()
	v.Required("financialYear", financialYear, "financialYear query parameter is required")
	v.Required("month", month, "month query parameter is required")
	if v.HasIssues() {
		api.FailWithDetails(w, http.StatusBadRequest, "validation", "invalid history query", v.Issues(), reqID)
		return
	}

	entries, err := h.Service.History(r.Context(), financialYear, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage", "failed to load payslip history", reqID)
		return
	}

	out := make([]historyEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, historyEntryResponse{
			Payslip:    entry.Payslip,
			Employee:   entry.Employee,
			Unresolved: entry.Employee == nil,
			Totals:     entry.Totals,
		})
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	payslipID := chi.URLParam(r, "payslipID")

	entry, err := h.Service.Get(r.Context(), payslipID)
	if err != nil {
		if errors.Is(err, payroll.ErrPayslipNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "payslip not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "storage", "failed to load payslip", reqID)
		return
	}

	api.Success(w, historyEntryResponse{
		Payslip:    entry.Payslip,
		Employee:   entry.Employee,
		Unresolved: entry.Employee == nil,
		Totals:     entry.Totals,
	}, reqID)
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	payslipID := chi.URLParam(r, "payslipID")

	filePath, err := h.Service.GeneratePayslipPDF(r.Context(), payslipID, h.PayslipDir)
	if err != nil {
		switch {
		case errors.Is(err, payroll.ErrPayslipNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "payslip not found", reqID)
		case errors.Is(err, payroll.ErrUnresolvedEmployee):
			api.Fail(w, http.StatusUnprocessableEntity, "unresolved_employee", "payslip references an unknown employee", reqID)
		default:
			api.Fail(w, http.StatusInternalServerError, "pdf", "failed to generate payslip PDF", reqID)
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", payslipID+".pdf"))
	http.ServeFile(w, r, filePath)
}

// handleEvents streams change notifications as server-sent events. One
// "change" event means the ledger or directory was written; the client
// re-runs its history query.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	flusher, ok := w.(http.Flusher)
	if !ok {
		api.Fail(w, http.StatusInternalServerError, "streaming", "streaming unsupported", reqID)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	fmt.Fprint(w, "event: ready\ndata: {}\n\n")
	flusher.Flush()

	ch, cancel := h.Bus.Subscribe()
	defer cancel()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ch:
			fmt.Fprint(w, "event: change\ndata: {}\n\n")
			flusher.Flush()
		}
	}
}
