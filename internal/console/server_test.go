package console

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rankforge/growth-console/internal/blueprint"
	"github.com/rankforge/growth-console/internal/records"
)

type stubPrinter struct {
	lastMarkdown string
	lastMeta     PrintMeta
	out          []byte
	err          error
}

func (p *stubPrinter) Render(_ context.Context, markdown string, meta PrintMeta) ([]byte, error) {
	p.lastMarkdown = markdown
	p.lastMeta = meta
	if p.err != nil {
		return nil, p.err
	}
	return p.out, nil
}

type testEnv struct {
	server      http.Handler
	store       *records.SQLiteStore
	printer     *stubPrinter
	snapshotDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	store, err := records.OpenSQLiteStore(filepath.Join(dir, "console.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	printer := &stubPrinter{out: []byte("%PDF-stub")}
	snapshots := records.NewSnapshotStore(dir)
	return &testEnv{
		server:      newServer(store, store, snapshots, printer, blueprint.Generate),
		store:       store,
		printer:     printer,
		snapshotDir: dir,
	}
}

func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)
	return rec
}

func validSubmit() SubmitRequest {
	return SubmitRequest{
		Vertical:       "cleaning-service",
		Name:           "Dana Whitfield",
		Email:          "dana@brightclean.example",
		Phone:          "555-0134",
		Company:        "BrightClean LLC",
		ServiceArea:    "Austin, TX",
		MonthlyRevenue: "10000",
		CurrentLeads:   "20",
		AvgJobValue:    "250",
	}
}

func TestSubmitBlueprintEndToEnd(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/blueprints", validSubmit())
	if rec.Code != 200 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var resp SubmitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RecordID == "" || resp.LeadID == "" {
		t.Fatalf("missing ids in response: %+v", resp)
	}
	if resp.Filename != "cleaning-service-growth-blueprint.pdf" {
		t.Fatalf("filename = %q", resp.Filename)
	}
	if resp.Projection.ProjectedLeads != 70 || resp.Projection.ProjectedRevenue != 4375 {
		t.Fatalf("unexpected projection: %+v", resp.Projection)
	}
	pdf, err := base64.StdEncoding.DecodeString(resp.PDFBase64)
	if err != nil {
		t.Fatalf("decode pdf: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Fatal("response payload is not a PDF")
	}
	if resp.Notice == "" {
		t.Fatal("missing download notice")
	}

	leads, err := env.store.ListLeads()
	if err != nil {
		t.Fatalf("list leads: %v", err)
	}
	if len(leads) != 1 || leads[0].Source != "cleaning-service-blueprint" {
		t.Fatalf("unexpected leads: %+v", leads)
	}
	reports, err := env.store.ListReports()
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if len(reports) != 1 || reports[0].ID != resp.RecordID {
		t.Fatalf("unexpected reports: %+v", reports)
	}

	snapPath := filepath.Join(env.snapshotDir, "cleaning-service_blueprint_leads.json")
	if _, err := os.Stat(snapPath); err != nil {
		t.Fatalf("legacy snapshot not written: %v", err)
	}
}

func TestProjectionEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/v1/projection?vertical=cleaning-service&monthly_revenue=10000&current_leads=20&avg_job_value=250", nil)
	if rec.Code != 200 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var resp struct {
		Vertical   string `json:"vertical"`
		Projection struct {
			ProjectedLeads   float64 `json:"projected_leads"`
			ProjectedRevenue float64 `json:"projected_revenue"`
			AnnualGrowth     float64 `json:"annual_growth"`
		} `json:"projection"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Vertical != "cleaning-service" {
		t.Fatalf("vertical = %q", resp.Vertical)
	}
	if resp.Projection.ProjectedLeads != 70 || resp.Projection.ProjectedRevenue != 4375 {
		t.Fatalf("unexpected projection: %+v", resp.Projection)
	}
	if resp.Projection.AnnualGrowth != -67500 {
		t.Fatalf("annual growth = %v", resp.Projection.AnnualGrowth)
	}
}

func TestProjectionRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)

	for _, query := range []string{
		"?monthly_revenue=&current_leads=20&avg_job_value=250",
		"?monthly_revenue=abc&current_leads=20&avg_job_value=250",
		"?monthly_revenue=10000&current_leads=-5&avg_job_value=250",
	} {
		rec := env.do(t, http.MethodGet, "/v1/projection"+query, nil)
		if rec.Code != 400 {
			t.Fatalf("query %q: status = %d, want 400", query, rec.Code)
		}
	}
}

func TestVerticalsExcludesGeneric(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/v1/verticals", nil)
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Verticals []struct {
			ID string `json:"id"`
		} `json:"verticals"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Verticals) != 7 {
		t.Fatalf("got %d verticals, want 7", len(resp.Verticals))
	}
	for _, v := range resp.Verticals {
		if v.ID == "growth" {
			t.Fatal("generic fallback should not be listed")
		}
	}
	for i := 1; i < len(resp.Verticals); i++ {
		if resp.Verticals[i-1].ID >= resp.Verticals[i].ID {
			t.Fatalf("verticals not sorted by id: %q before %q", resp.Verticals[i-1].ID, resp.Verticals[i].ID)
		}
	}
}

func TestRecordLifecycle(t *testing.T) {
	env := newTestEnv(t)

	sub := env.do(t, http.MethodPost, "/v1/blueprints", validSubmit())
	var resp SubmitResponse
	if err := json.Unmarshal(sub.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode submit: %v", err)
	}

	get := env.do(t, http.MethodGet, "/v1/records/"+resp.RecordID, nil)
	if get.Code != 200 {
		t.Fatalf("get record: status = %d", get.Code)
	}
	var rec records.GeneratedReportRecord
	if err := json.Unmarshal(get.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.Vertical != "cleaning-service" || rec.Lead.Name != "Dana Whitfield" {
		t.Fatalf("unexpected record: %+v", rec)
	}

	pdf := env.do(t, http.MethodGet, "/v1/records/"+resp.RecordID+"/pdf", nil)
	if pdf.Code != 200 {
		t.Fatalf("re-render: status = %d, body %s", pdf.Code, pdf.Body)
	}
	if ct := pdf.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if !bytes.HasPrefix(pdf.Body.Bytes(), []byte("%PDF-")) {
		t.Fatal("re-rendered artifact is not a PDF")
	}

	del := env.do(t, http.MethodDelete, "/v1/records/"+resp.RecordID, nil)
	if del.Code != 200 {
		t.Fatalf("delete: status = %d", del.Code)
	}
	if again := env.do(t, http.MethodDelete, "/v1/records/"+resp.RecordID, nil); again.Code != 404 {
		t.Fatalf("second delete: status = %d, want 404", again.Code)
	}
	if gone := env.do(t, http.MethodGet, "/v1/records/"+resp.RecordID, nil); gone.Code != 404 {
		t.Fatalf("get after delete: status = %d, want 404", gone.Code)
	}
}

func TestDeleteAllRecords(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 3; i++ {
		if rec := env.do(t, http.MethodPost, "/v1/blueprints", validSubmit()); rec.Code != 200 {
			t.Fatalf("submit %d: status = %d", i, rec.Code)
		}
	}
	del := env.do(t, http.MethodDelete, "/v1/records", nil)
	if del.Code != 200 {
		t.Fatalf("delete all: status = %d", del.Code)
	}
	var resp struct {
		Deleted int `json:"deleted"`
	}
	if err := json.Unmarshal(del.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Deleted != 3 {
		t.Fatalf("deleted = %d, want 3", resp.Deleted)
	}
	reports, err := env.store.ListReports()
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if len(reports) != 0 {
		t.Fatalf("reports remain after delete-all: %+v", reports)
	}
}

func TestRecordPreviewRendersHTML(t *testing.T) {
	env := newTestEnv(t)

	sub := env.do(t, http.MethodPost, "/v1/blueprints", validSubmit())
	var resp SubmitResponse
	if err := json.Unmarshal(sub.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode submit: %v", err)
	}

	prev := env.do(t, http.MethodGet, "/v1/records/"+resp.RecordID+"/preview", nil)
	if prev.Code != 200 {
		t.Fatalf("preview: status = %d", prev.Code)
	}
	body := prev.Body.String()
	if !strings.Contains(body, "<h1") || !strings.Contains(body, "Cleaning Service Growth Blueprint") {
		t.Fatalf("preview missing rendered title: %s", body[:min(len(body), 200)])
	}
	if !strings.Contains(body, "<table>") {
		t.Fatal("preview missing rendered results table")
	}
}

func TestRecordPrintUsesRenderer(t *testing.T) {
	env := newTestEnv(t)

	sub := env.do(t, http.MethodPost, "/v1/blueprints", validSubmit())
	var resp SubmitResponse
	if err := json.Unmarshal(sub.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode submit: %v", err)
	}

	printed := env.do(t, http.MethodGet, "/v1/records/"+resp.RecordID+"/print", nil)
	if printed.Code != 200 {
		t.Fatalf("print: status = %d, body %s", printed.Code, printed.Body)
	}
	if got := printed.Body.String(); got != "%PDF-stub" {
		t.Fatalf("print body = %q", got)
	}
	if env.printer.lastMeta.RecordID != resp.RecordID {
		t.Fatalf("renderer meta record = %q, want %q", env.printer.lastMeta.RecordID, resp.RecordID)
	}
	if env.printer.lastMeta.Vertical != "cleaning-service" {
		t.Fatalf("renderer meta vertical = %q", env.printer.lastMeta.Vertical)
	}
	if !strings.Contains(env.printer.lastMarkdown, "# Cleaning Service Growth Blueprint") {
		t.Fatal("renderer did not receive the record markdown")
	}
}

func TestUnknownRecordRoutes(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{
		"/v1/records/nope",
		"/v1/records/nope/pdf",
		"/v1/records/nope/preview",
		"/v1/records/nope/print",
	} {
		rec := env.do(t, http.MethodGet, path, nil)
		if rec.Code != 404 {
			t.Fatalf("%s: status = %d, want 404", path, rec.Code)
		}
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/v1/health", nil)
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Fatalf("body = %s", rec.Body)
	}
}

func TestLeadTimestampAssigned(t *testing.T) {
	env := newTestEnv(t)

	before := time.Now().Add(-time.Minute)
	if rec := env.do(t, http.MethodPost, "/v1/blueprints", validSubmit()); rec.Code != 200 {
		t.Fatalf("submit: status = %d", rec.Code)
	}
	leads, err := env.store.ListLeads()
	if err != nil {
		t.Fatalf("list leads: %v", err)
	}
	if len(leads) != 1 {
		t.Fatalf("got %d leads", len(leads))
	}
	if leads[0].Timestamp.Before(before) {
		t.Fatalf("stale timestamp %v", leads[0].Timestamp)
	}
	if leads[0].Status != records.LeadStatusNew {
		t.Fatalf("status = %q", leads[0].Status)
	}
}
