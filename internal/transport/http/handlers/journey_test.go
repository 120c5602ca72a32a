package handlers_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"paydesk/internal/app/server"
	"paydesk/internal/platform/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func testConfig(t *testing.T) config.Config {
	return config.Config{
		Addr:               ":0",
		Environment:        "test",
		StoreBackend:       config.BackendMemory,
		PayslipDir:         t.TempDir(),
		DuplicatePolicy:    "allow",
		RunSeed:            false,
		MaxBodyBytes:       1048576,
		CORSAllowedOrigins: []string{"*"},
	}
}

func newTestServer(t *testing.T, cfg config.Config) *httptest.Server {
	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	t.Cleanup(app.Close)

	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, client *http.Client, url string, payload any) (*http.Response, envelope) {
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	return resp, decodeEnvelope(t, resp)
}

func getJSON(t *testing.T, client *http.Client, url string) (*http.Response, envelope) {
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	return resp, decodeEnvelope(t, resp)
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestPayslipJourney(t *testing.T) {
	ts := newTestServer(t, testConfig(t))
	client := ts.Client()

	// Save a payslip using the legacy free-text pay period.
	resp, env := postJSON(t, client, ts.URL+"/api/v1/payslips", map[string]any{
		"name":        "Asha Verma",
		"employeeId":  "EMP100",
		"bankDetails": "HDFC 1234",
		"payPeriod":   "March 2024",
		"earnings":    map[string]string{"basicSalary": "30000", "hra": "5000", "bonus": "abc"},
		"deductions":  map[string]string{"tds": "2000"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var created struct {
		Payslip struct {
			ID            string `json:"id"`
			Month         string `json:"month"`
			FinancialYear string `json:"financialYear"`
		} `json:"payslip"`
		Totals struct {
			TotalEarnings   float64 `json:"totalEarnings"`
			TotalDeductions float64 `json:"totalDeductions"`
			NetSalary       float64 `json:"netSalary"`
		} `json:"totals"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode created payslip: %v", err)
	}
	if created.Payslip.Month != "March" || created.Payslip.FinancialYear != "2024-2025" {
		t.Fatalf("unexpected period: %s %s", created.Payslip.Month, created.Payslip.FinancialYear)
	}
	if created.Totals.TotalEarnings != 35000 || created.Totals.NetSalary != 33000 {
		t.Fatalf("unexpected totals: %+v", created.Totals)
	}

	// The history view for that period sees it, joined to the employee.
	resp, env = getJSON(t, client, ts.URL+"/api/v1/payslips?financialYear=2024-2025&month=March")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var entries []struct {
		Payslip struct {
			ID string `json:"id"`
		} `json:"payslip"`
		Employee *struct {
			ID         string `json:"id"`
			Department string `json:"department"`
		} `json:"employee"`
		Unresolved bool `json:"unresolved"`
	}
	if err := json.Unmarshal(env.Data, &entries); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(entries))
	}
	if entries[0].Unresolved || entries[0].Employee == nil {
		t.Fatal("expected the payslip to resolve to its employee")
	}
	if entries[0].Employee.Department != "N/A" {
		t.Fatalf("expected default department N/A, got %q", entries[0].Employee.Department)
	}

	// The PDF download renders from the same records.
	pdfResp, err := client.Get(ts.URL + "/api/v1/payslips/" + created.Payslip.ID + "/download")
	if err != nil {
		t.Fatalf("download payslip: %v", err)
	}
	defer pdfResp.Body.Close()
	if pdfResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for PDF download, got %d", pdfResp.StatusCode)
	}
	pdfBytes, err := io.ReadAll(pdfResp.Body)
	if err != nil {
		t.Fatalf("read PDF: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatal("expected a PDF document")
	}

	// The employee is now in the directory.
	resp, env = getJSON(t, client, ts.URL+"/api/v1/employees/EMP100")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestStructuredPeriodValidation(t *testing.T) {
	ts := newTestServer(t, testConfig(t))

	resp, env := postJSON(t, ts.Client(), ts.URL+"/api/v1/payslips", map[string]any{
		"name":  "Asha Verma",
		"month": "Marchuary",
		"year":  2024,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for a bad month, got %d", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "validation" {
		t.Fatalf("expected validation error, got %+v", env.Error)
	}
}

func TestDuplicateRejectPolicy(t *testing.T) {
	cfg := testConfig(t)
	cfg.DuplicatePolicy = "reject"
	ts := newTestServer(t, cfg)
	client := ts.Client()

	payload := map[string]any{
		"name":       "Asha Verma",
		"employeeId": "EMP100",
		"month":      "April",
		"year":       2024,
		"earnings":   map[string]string{"basicSalary": "30000"},
	}

	resp, _ := postJSON(t, client, ts.URL+"/api/v1/payslips", payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	resp, env := postJSON(t, client, ts.URL+"/api/v1/payslips", payload)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate period, got %d", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "duplicate_payslip" {
		t.Fatalf("expected duplicate_payslip error, got %+v", env.Error)
	}
}

func TestHistoryQueryRequiresPeriod(t *testing.T) {
	ts := newTestServer(t, testConfig(t))

	resp, env := getJSON(t, ts.Client(), ts.URL+"/api/v1/payslips?month=April")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without financialYear, got %d", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "validation" {
		t.Fatalf("expected validation error, got %+v", env.Error)
	}
}

func TestChangeEventStream(t *testing.T) {
	ts := newTestServer(t, testConfig(t))
	client := ts.Client()

	resp, err := client.Get(ts.URL + "/api/v1/payslips/events")
	if err != nil {
		t.Fatalf("open event stream: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("expected text/event-stream, got %q", ct)
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			lines <- strings.TrimSpace(line)
		}
	}()

	waitFor := func(event string) {
		t.Helper()
		timeout := time.After(3 * time.Second)
		for {
			select {
			case line, ok := <-lines:
				if !ok {
					t.Fatalf("stream closed before %q event", event)
				}
				if line == "event: "+event {
					return
				}
			case <-timeout:
				t.Fatalf("timed out waiting for %q event", event)
			}
		}
	}

	waitFor("ready")

	// A ledger write must reach the subscriber.
	postResp, _ := postJSON(t, client, ts.URL+"/api/v1/payslips", map[string]any{
		"name":       "Asha Verma",
		"employeeId": "EMP100",
		"month":      "April",
		"year":       2024,
		"earnings":   map[string]string{"basicSalary": "30000"},
	})
	if postResp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", postResp.StatusCode)
	}

	waitFor("change")
}

func TestEmployeeUpsertEndpoint(t *testing.T) {
	ts := newTestServer(t, testConfig(t))
	client := ts.Client()

	resp, _ := postJSON(t, client, ts.URL+"/api/v1/employees", map[string]any{
		"id":         "EMP200",
		"name":       "Priya Patel",
		"department": "Finance",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	// Updating through PUT keeps omitted fields.
	body, _ := json.Marshal(map[string]any{"name": "Priya R Patel"})
	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/v1/employees/EMP200", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	putResp, err := client.Do(req)
	if err != nil {
		t.Fatalf("put employee: %v", err)
	}
	env := decodeEnvelope(t, putResp)
	if putResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", putResp.StatusCode)
	}

	var emp struct {
		Name       string `json:"name"`
		Department string `json:"department"`
	}
	if err := json.Unmarshal(env.Data, &emp); err != nil {
		t.Fatalf("decode employee: %v", err)
	}
	if emp.Name != "Priya R Patel" {
		t.Fatalf("expected updated name, got %q", emp.Name)
	}
	if emp.Department != "Finance" {
		t.Fatalf("expected department preserved, got %q", emp.Department)
	}
}
